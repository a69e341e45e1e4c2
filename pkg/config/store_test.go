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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePaths(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()

	assert.Equal(t, filepath.Join("/config", "system.yml"), store.SystemPath())
	assert.Equal(t, filepath.Join("/config", "runners", "mednafen.yml"), store.RunnerPath("mednafen"))
	assert.Equal(t, filepath.Join("/config", "games", "doom-1600000000.yml"),
		store.GamePath("doom-1600000000"))

	assert.Empty(t, store.RunnerPath(""), "no path without a runner id")
	assert.Empty(t, store.GamePath(""), "no path without a game-config id")
}

func TestStoreReadLayerAbsent(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()

	layer, err := store.ReadLayer(store.SystemPath())
	require.NoError(t, err, "a missing document is not an error")
	assert.Empty(t, layer)

	layer, err = store.ReadLayer("")
	require.NoError(t, err, "an unaddressable document reads as empty")
	assert.Empty(t, layer)
}

func TestStoreWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()

	layer := RawLayer{
		"system": {
			"vsync": false,
			"env":   map[string]any{"DXVK_HUD": "fps"},
		},
		"mednafen": {
			"scaler": "4x",
		},
	}

	path := store.RunnerPath("mednafen")
	require.NoError(t, store.WriteLayer(path, layer))

	got, err := store.ReadLayer(path)
	require.NoError(t, err)
	assert.Equal(t, layer, got)
}

func TestStoreReadLayerNullSection(t *testing.T) {
	t.Parallel()

	fs, store := newTestStore()
	require.NoError(t, fs.WriteRaw(store.SystemPath(), []byte("system:\n")))

	layer, err := store.ReadLayer(store.SystemPath())
	require.NoError(t, err)
	assert.NotNil(t, layer["system"], "a null section reads as an empty mapping")
	assert.Empty(t, layer["system"])
}

func TestStoreReadLayerMalformed(t *testing.T) {
	t.Parallel()

	fs, store := newTestStore()

	require.NoError(t, fs.WriteRaw(store.SystemPath(), []byte("]not yaml[")))
	_, err := store.ReadLayer(store.SystemPath())
	require.Error(t, err)

	require.NoError(t, fs.WriteRaw(store.RunnerPath("x"), []byte("system: [1, 2]\n")))
	_, err = store.ReadLayer(store.RunnerPath("x"))
	require.Error(t, err, "a non-mapping section is malformed content")
}

func TestStoreCopy(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()

	src := store.GamePath("doom-1600000000")
	dst := store.GamePath("doom-1600000999")
	layer := RawLayer{"game": {"main_file": "/roms/doom.wad"}}

	require.NoError(t, store.WriteLayer(src, layer))
	require.NoError(t, store.Copy(src, dst))

	got, err := store.ReadLayer(dst)
	require.NoError(t, err)
	assert.Equal(t, layer, got)

	require.Error(t, store.Copy(store.GamePath("missing-1"), dst))
}

func TestStoreExistsAndRemove(t *testing.T) {
	t.Parallel()

	_, store := newTestStore()
	path := store.GamePath("doom-1600000000")

	assert.False(t, store.Exists(path))
	assert.False(t, store.Exists(""))

	require.NoError(t, store.WriteLayer(path, RawLayer{"game": {"a": 1}}))
	assert.True(t, store.Exists(path))

	require.NoError(t, store.Remove(path))
	assert.False(t, store.Exists(path))
}
