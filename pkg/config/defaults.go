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
	"errors"

	"github.com/StrataProject/strata-core/pkg/helpers/syncutil"
	"github.com/StrataProject/strata-core/pkg/options"
	"github.com/rs/zerolog/log"
)

// DefaultsCache caches flattened default mappings per (level, runner id).
// It is owned by the caller and shared across resolver instances; call
// Invalidate after changing registered runners or option tables.
type DefaultsCache struct {
	entries map[defaultsKey]Section
	mu      syncutil.RWMutex
}

type defaultsKey struct {
	level    Level
	runnerID string
}

// NewDefaultsCache creates an empty defaults cache.
func NewDefaultsCache() *DefaultsCache {
	return &DefaultsCache{entries: make(map[defaultsKey]Section)}
}

func (c *DefaultsCache) get(key defaultsKey) (Section, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	section, ok := c.entries[key]
	return section, ok
}

func (c *DefaultsCache) put(key defaultsKey, section Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = section
}

// Invalidate drops every cached defaults mapping.
func (c *DefaultsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[defaultsKey]Section)
}

// GetDefaults returns the flattened default-value mapping for a level. A
// lazy default that fails to evaluate is logged and omitted; the call never
// fails because of one option.
func (r *Resolver) GetDefaults(level Level) Section {
	key := defaultsKey{level: level, runnerID: r.runnerID}
	if r.cache != nil {
		if cached, ok := r.cache.get(key); ok {
			return cached
		}
	}

	defaults := Section{}
	for name, opt := range r.optionsAsMap(level) {
		if !opt.HasDefault() {
			continue
		}

		value := opt.Default
		if opt.DefaultFunc != nil {
			var err error
			value, err = opt.DefaultFunc()
			if err != nil {
				log.Warn().Err(err).Msgf("unable to generate a default for %q", name)
				continue
			}
		}
		defaults[name] = value
	}

	if r.cache != nil {
		r.cache.put(key, defaults)
	}
	return defaults
}

// optionsAsMap resolves the option schema source for a level and flattens
// it to a name-keyed map, last duplicate winning.
func (r *Resolver) optionsAsMap(level Level) map[string]options.Option {
	if level == LevelSystem {
		if r.runnerID != "" {
			return options.AsMap(r.provider.WithRunnerOverrides(r.runnerID))
		}
		return options.AsMap(r.provider.SystemOptions())
	}

	if r.runnerID == "" {
		return nil
	}

	var (
		opts []options.Option
		err  error
	)
	if level == LevelRunner {
		opts, err = r.provider.RunnerOptions(r.runnerID)
	} else {
		opts, err = r.provider.GameOptions(r.runnerID)
	}
	if err != nil {
		if errors.Is(err, options.ErrUnknownRunner) {
			log.Debug().Msgf("no options for unregistered runner: %s", r.runnerID)
		} else {
			log.Warn().Err(err).Msgf("failed to load %s options for runner %s", level, r.runnerID)
		}
		return nil
	}

	return options.AsMap(opts)
}
