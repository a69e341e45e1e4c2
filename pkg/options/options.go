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

// Package options declares the option descriptors and runner registry that
// supply default values to the layered config resolver. Runners publish
// ordered option lists; the resolver flattens them into default mappings.
package options

// Option describes a single configurable option as declared by a runner or
// by the global system option table.
type Option struct {
	// Default is a literal default value. Ignored when DefaultFunc is set.
	Default any `validate:"-"`
	// DefaultFunc computes the default lazily. Failures are non-fatal: the
	// option is simply omitted from the flattened defaults.
	DefaultFunc func() (any, error) `validate:"-"`
	// Option is the option name, used as the key in config sections.
	Option string `validate:"required"`
	Label  string `validate:"-"`
	// Type is a UI hint ("bool", "string", "choice", "directory", ...).
	// The resolver itself treats values as opaque.
	Type     string `validate:"omitempty,oneof=bool string choice directory file mapping label"`
	Help     string `validate:"-"`
	Advanced bool   `validate:"-"`
}

// HasDefault reports whether the option declares any default at all.
func (o Option) HasDefault() bool {
	return o.Default != nil || o.DefaultFunc != nil
}

// AsMap converts an ordered option list to a map keyed by option name.
// The last occurrence of a duplicate name wins.
func AsMap(opts []Option) map[string]Option {
	out := make(map[string]Option, len(opts))
	for _, opt := range opts {
		out[opt.Option] = opt
	}
	return out
}
