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
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reloads a resolver when any of its backing documents change on
// disk. It watches parent directories so documents created after startup
// are picked up too. Only works against the OS filesystem.
//
// The resolver itself stays synchronous; the watcher is the single
// background goroutine, and onReload is called from it.
type Watcher struct {
	watcher  *fsnotify.Watcher
	resolver *Resolver
	onReload func(error)
	paths    map[string]struct{}
	done     chan struct{}
}

// NewWatcher starts watching the resolvable backing documents of r.
// onReload receives the result of each triggered reload; it may be nil.
func NewWatcher(r *Resolver, onReload func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		resolver: r,
		onReload: onReload,
		paths:    make(map[string]struct{}),
		done:     make(chan struct{}),
	}

	for _, level := range []Level{LevelSystem, LevelRunner, LevelGame} {
		path, err := r.layerPath(level)
		if err != nil || path == "" {
			continue
		}
		w.paths[filepath.Clean(path)] = struct{}{}
	}

	dirs := make(map[string]struct{})
	for path := range w.paths {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to watch config directory %s: %w", dir, err)
		}
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if _, ok := w.paths[filepath.Clean(event.Name)]; !ok {
				continue
			}
			log.Debug().Msgf("config document changed: %s", event.Name)
			err := w.resolver.InitializeConfig()
			if err != nil {
				log.Error().Err(err).Msg("config reload failed")
			}
			if w.onReload != nil {
				w.onReload(err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("config watcher error")
		}
	}
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	<-w.done
	return nil
}
