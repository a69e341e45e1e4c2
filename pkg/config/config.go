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

// Package config implements the layered configuration resolver used by the
// launcher: three raw document layers (system, runner, game), each
// independently persisted, cascaded into read views by merging a defaults
// provider with the raw layers in priority order.
//
// The levels are (highest to lowest): game, runner and system. Each level
// has its own set of sections, available to and overridden by the levels
// above it:
//
//	 level | sections
//	-------|----------------------
//	  game | system, runner, game
//	runner | system, runner
//	system | system
//
// To read, use the cascaded views System, Runner and Game. To write, mutate
// the corresponding raw section (RawSystem, RawRunner, RawGame) in place and
// call Save. Save persists only the current level's raw layer, then reloads
// everything, so post-save state reflects exactly what was written.
//
// A resolver is not safe for concurrent mutation of its raw sections, and
// writes to the same backing document from multiple resolvers are not
// coordinated; callers serialize externally.
package config

import (
	"fmt"
	"maps"

	"github.com/StrataProject/strata-core/pkg/helpers/syncutil"
	"github.com/StrataProject/strata-core/pkg/options"
	"github.com/rs/zerolog/log"
)

// Params selects what a Resolver points at. Level is inferred when unset:
// a game-config id implies game level, else a runner id implies runner
// level, else system level.
type Params struct {
	// Cache is an optional shared defaults cache.
	Cache *DefaultsCache
	// RunnerID identifies the runner. Required for runner level; optional
	// at game level, where it is otherwise derived from the game document's
	// "game" section ("runner" key).
	RunnerID string
	// GameConfigID identifies the game config document.
	GameConfigID string
	// Level forces the config level instead of inferring it.
	Level Level
}

// Resolver holds the three raw layers and their cascaded views for one
// (level, identifier) position in the hierarchy.
type Resolver struct {
	store    *Store
	provider options.Provider
	cache    *DefaultsCache

	level        Level
	runnerID     string
	gameConfigID string

	// raw layers, one per level, loaded fully before any cascade
	systemLevel RawLayer
	runnerLevel RawLayer
	gameLevel   RawLayer

	// cascaded views (read side)
	systemConfig Section
	runnerConfig Section
	gameConfig   Section

	// raw section shortcuts into the current level's layer (write side)
	rawSystemConfig Section
	rawRunnerConfig Section
	rawGameConfig   Section
	rawConfig       RawLayer

	mu syncutil.RWMutex
}

// New creates a resolver and immediately loads raw layers and cascaded
// views. The only failure mode is unreadable or malformed storage.
func New(store *Store, provider options.Provider, params Params) (*Resolver, error) {
	level := params.Level
	if level == "" {
		switch {
		case params.GameConfigID != "":
			level = LevelGame
		case params.RunnerID != "":
			level = LevelRunner
		default:
			level = LevelSystem
		}
	} else if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}

	r := &Resolver{
		store:        store,
		provider:     provider,
		cache:        params.Cache,
		level:        level,
		runnerID:     params.RunnerID,
		gameConfigID: params.GameConfigID,
	}

	if err := r.InitializeConfig(); err != nil {
		return nil, err
	}
	return r, nil
}

// Level returns the resolver's config level.
func (r *Resolver) Level() Level { return r.level }

// RunnerID returns the runner id, possibly derived from the game document.
func (r *Resolver) RunnerID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.runnerID
}

// GameConfigID returns the game-config id, if any.
func (r *Resolver) GameConfigID() string { return r.gameConfigID }

// System returns the cascaded system view.
func (r *Resolver) System() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.systemConfig
}

// Runner returns the cascaded runner view. Empty below runner level.
func (r *Resolver) Runner() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.runnerConfig
}

// Game returns the cascaded game view. Empty below game level.
func (r *Resolver) Game() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gameConfig
}

// RawSystem returns the live "system" section of the current level's layer.
// Mutate it in place, then call Save.
func (r *Resolver) RawSystem() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rawSystemConfig
}

// RawRunner returns the live runner section of the current level's layer.
// Nil at system level or when no runner id is known.
func (r *Resolver) RawRunner() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rawRunnerConfig
}

// RawGame returns the live "game" section of the game layer. Nil below game
// level.
func (r *Resolver) RawGame() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rawGameConfig
}

// Raw returns the current level's whole raw layer.
func (r *Resolver) Raw() RawLayer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rawConfig
}

// GetConfig loads the raw layer for a level straight from storage. A level
// whose identifier is unset reads as an empty layer.
func (r *Resolver) GetConfig(level Level) (RawLayer, error) {
	path, err := r.layerPath(level)
	if err != nil {
		return nil, err
	}
	return r.store.ReadLayer(path)
}

func (r *Resolver) layerPath(level Level) (string, error) {
	switch level {
	case LevelSystem:
		return r.store.SystemPath(), nil
	case LevelRunner:
		return r.store.RunnerPath(r.runnerID), nil
	case LevelGame:
		return r.store.GamePath(r.gameConfigID), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}

// InitializeConfig (re)loads all three raw layers from storage, then
// recomputes the cascaded views and raw section shortcuts. Idempotent.
func (r *Resolver) InitializeConfig() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initializeConfig()
}

func (r *Resolver) initializeConfig() error {
	var err error
	if r.systemLevel, err = r.store.ReadLayer(r.store.SystemPath()); err != nil {
		return err
	}
	if r.runnerLevel, err = r.store.ReadLayer(r.store.RunnerPath(r.runnerID)); err != nil {
		return err
	}
	if r.gameLevel, err = r.store.ReadLayer(r.store.GamePath(r.gameConfigID)); err != nil {
		return err
	}

	// Constructing with a game-config id but no runner id is legal; the
	// runner is then named inside the game document itself.
	if r.level == LevelGame && r.runnerID == "" {
		if id, ok := r.gameLevel[sectionGame]["runner"].(string); ok {
			r.runnerID = id
			// the runner layer could not be addressed before the id was known
			if r.runnerLevel, err = r.store.ReadLayer(r.store.RunnerPath(r.runnerID)); err != nil {
				return err
			}
		}
	}

	r.updateCascadedConfig()
	r.updateRawConfig()
	return nil
}

// updateCascadedConfig rebuilds the read views from defaults plus the raw
// layers, lowest priority first.
func (r *Resolver) updateCascadedConfig() {
	ensureSection(r.systemLevel, sectionSystem)
	r.systemConfig = Section{}
	maps.Copy(r.systemConfig, r.GetDefaults(LevelSystem))
	maps.Copy(r.systemConfig, r.systemLevel[sectionSystem])

	if (r.level == LevelRunner || r.level == LevelGame) && r.runnerID != "" {
		ensureSection(r.runnerLevel, r.runnerID)
		ensureSection(r.runnerLevel, sectionSystem)
		r.runnerConfig = Section{}
		maps.Copy(r.runnerConfig, r.GetDefaults(LevelRunner))
		maps.Copy(r.runnerConfig, r.runnerLevel[r.runnerID])
		mergeSection(r.systemConfig, r.runnerLevel[sectionSystem])
	}

	if r.level == LevelGame && r.runnerID != "" {
		ensureSection(r.gameLevel, sectionGame)
		ensureSection(r.gameLevel, r.runnerID)
		ensureSection(r.gameLevel, sectionSystem)
		r.gameConfig = Section{}
		maps.Copy(r.gameConfig, r.GetDefaults(LevelGame))
		maps.Copy(r.gameConfig, r.gameLevel[sectionGame])
		// game-level per-runner overrides win over the runner document
		maps.Copy(r.runnerConfig, r.gameLevel[r.runnerID])
		mergeSection(r.systemConfig, r.gameLevel[sectionSystem])
	}
}

// updateRawConfig points the raw section shortcuts at the current level's
// layer so callers mutate the layer itself.
func (r *Resolver) updateRawConfig() {
	var raw RawLayer
	switch r.level {
	case LevelGame:
		raw = r.gameLevel
	case LevelRunner:
		raw = r.runnerLevel
	case LevelSystem:
		raw = r.systemLevel
	}

	ensureSection(raw, sectionSystem)
	r.rawSystemConfig = raw[sectionSystem]

	r.rawRunnerConfig = nil
	if r.level != LevelSystem && r.runnerID != "" {
		ensureSection(raw, r.runnerID)
		r.rawRunnerConfig = raw[r.runnerID]
	}

	r.rawGameConfig = nil
	if r.level == LevelGame {
		ensureSection(raw, sectionGame)
		r.rawGameConfig = raw[sectionGame]
	}

	r.rawConfig = raw
}

// Save persists the current level's raw layer, with falsy/empty top-level
// entries stripped, then reloads everything from storage. A level whose
// identifier is missing logs a warning and writes nothing.
func (r *Resolver) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var layer RawLayer
	switch r.level {
	case LevelSystem:
		layer = r.systemLevel
	case LevelRunner:
		layer = r.runnerLevel
	case LevelGame:
		layer = r.gameLevel
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, r.level)
	}

	path, err := r.layerPath(r.level)
	if err != nil {
		return err
	}
	if path == "" {
		log.Warn().Msgf("cannot save config: no document path for level %q", r.level)
		return nil
	}

	log.Debug().Msgf("saving %s config to %s", r.level, path)
	if err := r.store.WriteLayer(path, pruneFalsy(layer)); err != nil {
		return err
	}

	return r.initializeConfig()
}

// Remove deletes the game-level document for the current game-config id.
// No-op when the document does not exist. Other levels' documents are never
// touched.
func (r *Resolver) Remove() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.store.GamePath(r.gameConfigID)
	if !r.store.Exists(path) {
		log.Debug().Msgf("no config document at %s", path)
		return nil
	}

	if err := r.store.Remove(path); err != nil {
		return err
	}
	log.Debug().Msgf("removed config %s", path)
	return nil
}
