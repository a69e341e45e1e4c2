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

	helpers "github.com/StrataProject/strata-core/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The watcher needs real inotify events, so these tests run against the OS
// filesystem.

func TestWatcherReloadsOnChange(t *testing.T) {
	fs := helpers.NewOSFS()
	store := NewStore(fs.Fs, t.TempDir())

	resolver, err := New(store, stubProvider{}, Params{})
	require.NoError(t, err)
	require.Equal(t, true, resolver.System()["vsync"])

	reloaded := make(chan error, 8)
	watcher, err := NewWatcher(resolver, func(err error) {
		reloaded <- err
	})
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	// an external writer replaces the system document
	require.NoError(t, fs.CreateLayerFile(store.SystemPath(), map[string]map[string]any{
		"system": {"vsync": false},
	}))

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed after document change")
	}

	assert.Equal(t, false, resolver.System()["vsync"])
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	fs := helpers.NewOSFS()
	store := NewStore(fs.Fs, t.TempDir())

	resolver, err := New(store, stubProvider{}, Params{})
	require.NoError(t, err)

	reloaded := make(chan error, 8)
	watcher, err := NewWatcher(resolver, func(err error) {
		reloaded <- err
	})
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	require.NoError(t, fs.WriteRaw(store.SystemPath()+".bak", []byte("ignored")))

	select {
	case <-reloaded:
		t.Fatal("reload triggered by an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherClose(t *testing.T) {
	fs := helpers.NewOSFS()
	store := NewStore(fs.Fs, t.TempDir())

	resolver, err := New(store, stubProvider{}, Params{})
	require.NoError(t, err)

	watcher, err := NewWatcher(resolver, nil)
	require.NoError(t, err)
	require.NoError(t, watcher.Close())
}
