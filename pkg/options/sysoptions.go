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
	"os"
	"path/filepath"
)

// SystemOptions returns the global system option table: options that apply
// to every game regardless of runner. Runners refine this table through
// their SystemOverrides.
func SystemOptions() []Option {
	return []Option{
		{
			Option:      "game_path",
			Type:        "directory",
			Label:       "Default installation folder",
			DefaultFunc: defaultGamePath,
		},
		{
			Option:  "disable_runtime",
			Type:    "bool",
			Label:   "Disable bundled runtime",
			Default: false,
		},
		{
			Option:  "vsync",
			Type:    "bool",
			Label:   "Vertical sync",
			Default: true,
		},
		{
			Option:   "restore_gamma",
			Type:     "bool",
			Label:    "Restore gamma on game exit",
			Default:  false,
			Advanced: true,
		},
		{
			Option: "prefix_command",
			Type:   "string",
			Label:  "Command prefix",
			Help:   "Prepended to the launch command, e.g. a wrapper like gamemoderun.",
		},
		{
			Option: "env",
			Type:   "mapping",
			Label:  "Environment variables",
		},
		{
			Option:   "terminal",
			Type:     "bool",
			Label:    "Run in a terminal",
			Default:  false,
			Advanced: true,
		},
	}
}

// defaultGamePath guesses a reasonable install directory. Evaluated lazily
// so a missing home directory only drops this one default.
func defaultGamePath() (any, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err //nolint:wrapcheck // evaluation site logs and omits
	}
	return filepath.Join(home, "Games"), nil
}
