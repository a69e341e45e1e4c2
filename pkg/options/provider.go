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

// Provider supplies option descriptors for each config level. The resolver
// only depends on this interface; the Registry is the standard
// implementation.
type Provider interface {
	// SystemOptions returns the global system option table.
	SystemOptions() []Option
	// WithRunnerOverrides returns the system option table augmented with a
	// runner's system-level overrides. An unknown runner returns the plain
	// system table.
	WithRunnerOverrides(runnerID string) []Option
	// RunnerOptions returns the options a runner declares at runner level.
	// Returns ErrUnknownRunner for an unregistered runner id.
	RunnerOptions(runnerID string) ([]Option, error)
	// GameOptions returns the options a runner declares at game level.
	// Returns ErrUnknownRunner for an unregistered runner id.
	GameOptions(runnerID string) ([]Option, error)
}
