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

	"github.com/stretchr/testify/assert"
)

func TestMergeSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dst      Section
		src      Section
		expected Section
	}{
		{
			name:     "empty source is a no-op",
			dst:      Section{"a": 1},
			src:      Section{},
			expected: Section{"a": 1},
		},
		{
			name:     "plain keys replace",
			dst:      Section{"a": 1, "b": 2},
			src:      Section{"b": 3, "c": 4},
			expected: Section{"a": 1, "b": 3, "c": 4},
		},
		{
			name: "env merges key-wise",
			dst:  Section{"env": map[string]any{"A": "1", "B": "old"}},
			src:  Section{"env": map[string]any{"B": "2", "C": "3"}},
			expected: Section{
				"env": map[string]any{"A": "1", "B": "2", "C": "3"},
			},
		},
		{
			name:     "env appears only in source",
			dst:      Section{},
			src:      Section{"env": map[string]any{"A": "1"}},
			expected: Section{"env": map[string]any{"A": "1"}},
		},
		{
			name: "env merge alongside plain replace",
			dst:  Section{"env": map[string]any{"A": "1"}, "vsync": true},
			src:  Section{"env": map[string]any{"B": "2"}, "vsync": false},
			expected: Section{
				"env":   map[string]any{"A": "1", "B": "2"},
				"vsync": false,
			},
		},
		{
			name:     "typed string env map is normalized",
			dst:      Section{"env": map[string]string{"A": "1"}},
			src:      Section{"env": map[string]string{"B": "2"}},
			expected: Section{"env": map[string]any{"A": "1", "B": "2"}},
		},
		{
			name:     "non-mapping env value treated as empty",
			dst:      Section{"env": "garbage"},
			src:      Section{"env": map[string]any{"A": "1"}},
			expected: Section{"env": map[string]any{"A": "1"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mergeSection(tt.dst, tt.src)
			assert.Equal(t, tt.expected, tt.dst)
		})
	}
}

func TestIsFalsy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: true},
		{name: "false", value: false, expected: true},
		{name: "true", value: true, expected: false},
		{name: "empty string", value: "", expected: true},
		{name: "string", value: "x", expected: false},
		{name: "zero int", value: 0, expected: true},
		{name: "int", value: 7, expected: false},
		{name: "zero float", value: 0.0, expected: true},
		{name: "float", value: 0.5, expected: false},
		{name: "empty map", value: Section{}, expected: true},
		{name: "map", value: Section{"a": 1}, expected: false},
		{name: "empty slice", value: []any{}, expected: true},
		{name: "slice", value: []any{1}, expected: false},
		{name: "struct-ish value", value: struct{}{}, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, isFalsy(tt.value))
		})
	}
}

func TestPruneFalsy(t *testing.T) {
	t.Parallel()

	layer := RawLayer{
		"system":   {"vsync": false},
		"game":     {},
		"mednafen": nil,
	}

	pruned := pruneFalsy(layer)

	assert.Equal(t, RawLayer{"system": {"vsync": false}}, pruned,
		"empty sections are dropped, non-empty sections keep falsy values inside")
	assert.Contains(t, layer, "game", "input layer is not mutated")
}

func TestEnsureSection(t *testing.T) {
	t.Parallel()

	layer := RawLayer{"system": {"a": 1}}

	ensureSection(layer, "system")
	assert.Equal(t, Section{"a": 1}, layer["system"], "existing section untouched")

	ensureSection(layer, "game")
	assert.NotNil(t, layer["game"])
	assert.Empty(t, layer["game"])
}
