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

package options

import (
	"errors"
	"fmt"

	"github.com/StrataProject/strata-core/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ErrUnknownRunner is returned when a runner id has not been registered.
var ErrUnknownRunner = errors.New("unknown runner")

// Runner declares a launchable runner (an emulator or native launcher) and
// the option schemas it contributes to each config level.
type Runner struct {
	ID   string `validate:"required"`
	Name string `validate:"-"`
	// SystemOverrides are appended to the global system option table when
	// resolving system defaults in this runner's context. A later entry with
	// the same option name wins.
	SystemOverrides []Option `validate:"dive"`
	RunnerOptions   []Option `validate:"dive"`
	GameOptions     []Option `validate:"dive"`
}

// Registry holds registered runners and implements Provider on top of the
// global system option table.
type Registry struct {
	runners  map[string]Runner
	system   []Option
	validate *validator.Validate
	mu       syncutil.RWMutex
}

// NewRegistry creates a registry seeded with the built-in system options.
func NewRegistry() *Registry {
	return &Registry{
		runners:  make(map[string]Runner),
		system:   SystemOptions(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register adds a runner to the registry, replacing any previous entry with
// the same id. The runner and its option descriptors are validated first.
func (r *Registry) Register(runner Runner) error {
	if err := r.validate.Struct(&runner); err != nil {
		return fmt.Errorf("invalid runner %q: %w", runner.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runners[runner.ID]; ok {
		log.Debug().Msgf("replacing registered runner: %s", runner.ID)
	}
	r.runners[runner.ID] = runner

	return nil
}

// Lookup returns a registered runner by id.
func (r *Registry) Lookup(runnerID string) (Runner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	runner, ok := r.runners[runnerID]
	return runner, ok
}

// IDs returns the ids of all registered runners.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.runners))
	for id := range r.runners {
		ids = append(ids, id)
	}
	return ids
}

// SystemOptions implements Provider.
func (r *Registry) SystemOptions() []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Option, len(r.system))
	copy(out, r.system)
	return out
}

// WithRunnerOverrides implements Provider. The runner's overrides come after
// the global table, so flattening with AsMap lets the runner win.
func (r *Registry) WithRunnerOverrides(runnerID string) []Option {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Option, len(r.system))
	copy(out, r.system)

	runner, ok := r.runners[runnerID]
	if !ok {
		return out
	}
	return append(out, runner.SystemOverrides...)
}

// RunnerOptions implements Provider.
func (r *Registry) RunnerOptions(runnerID string) ([]Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.runners[runnerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRunner, runnerID)
	}
	return runner.RunnerOptions, nil
}

// GameOptions implements Provider.
func (r *Registry) GameOptions(runnerID string) ([]Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.runners[runnerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRunner, runnerID)
	}
	return runner.GameOptions, nil
}
