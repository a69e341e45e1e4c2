// Strata Core
// Copyright (c) 2026 The Strata Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Strata Core.
//
// Strata Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Strata Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Strata Core.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeGameConfigID(t *testing.T) {
	t.Parallel()

	at := time.Unix(1600000000, 0)
	assert.Equal(t, "doom-1600000000", MakeGameConfigID("doom", at))
}

func TestWriteGameConfig(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()
	clock := clockwork.NewFakeClockAt(time.Unix(1600000000, 0))

	id, err := WriteGameConfig(store, clock, "doom", RawLayer{
		"game": {"main_file": "/roms/doom.wad"},
	})
	require.NoError(t, err)
	assert.Equal(t, "doom-1600000000", id)

	layer, err := store.ReadLayer(store.GamePath(id))
	require.NoError(t, err)
	assert.Equal(t, "/roms/doom.wad", layer["game"]["main_file"])
}

func TestDuplicateGameConfig(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()
	clock := clockwork.NewFakeClockAt(time.Unix(1600000000, 0))

	sourceID, err := WriteGameConfig(store, clock, "doom", RawLayer{
		"game": {"main_file": "/roms/doom.wad"},
	})
	require.NoError(t, err)

	// a later duplicate gets a distinct id
	clock.Advance(time.Second)
	newID, err := DuplicateGameConfig(store, clock, "doom", sourceID)
	require.NoError(t, err)
	assert.Equal(t, "doom-1600000001", newID)
	assert.NotEqual(t, sourceID, newID)

	original, err := store.ReadLayer(store.GamePath(sourceID))
	require.NoError(t, err)
	duplicate, err := store.ReadLayer(store.GamePath(newID))
	require.NoError(t, err)
	assert.Equal(t, original, duplicate)
}

func TestDuplicateGameConfigMissingSource(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()
	clock := clockwork.NewFakeClockAt(time.Unix(1600000000, 0))

	_, err := DuplicateGameConfig(store, clock, "doom", "doom-1")
	require.Error(t, err)
}
