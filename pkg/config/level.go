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
	"fmt"
)

// Level is a position in the configuration hierarchy. Each level is more
// specific than the one below it: system < runner < game.
type Level string

const (
	LevelSystem Level = "system"
	LevelRunner Level = "runner"
	LevelGame   Level = "game"
)

// ErrInvalidLevel is returned when a Level value is not one of the three
// defined levels. This is a programmer error, never logged and ignored.
var ErrInvalidLevel = errors.New("invalid config level")

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	switch l {
	case LevelSystem, LevelRunner, LevelGame:
		return true
	default:
		return false
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Section names within a raw layer document. Runner sections are keyed by
// the runner id itself.
const (
	sectionSystem = "system"
	sectionGame   = "game"
)
