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

import "reflect"

// Section is a mapping of option name to value within one raw layer. Values
// are untyped YAML trees: scalars, sequences and nested mappings.
type Section = map[string]any

// RawLayer is one level's raw document: a mapping of section name
// ("system", a runner id, or "game") to Section.
type RawLayer = map[string]Section

// envKey is the one section entry that cascades key-wise instead of being
// replaced wholesale.
const envKey = "env"

// ensureSection materializes an empty section so later merges and the raw
// section shortcuts never hit a missing key.
func ensureSection(layer RawLayer, name string) {
	if layer[name] == nil {
		layer[name] = Section{}
	}
}

// mergeSection merges src into dst env-aware: the "env" sub-mapping is
// combined key by key (src entries win per key), every other entry in src
// replaces the dst entry wholesale.
func mergeSection(dst, src Section) {
	if len(src) == 0 {
		return
	}
	for k, v := range src {
		if k == envKey {
			dst[envKey] = mergeEnv(dst[envKey], v)
			continue
		}
		dst[k] = v
	}
}

// mergeEnv combines two env mappings key-wise, higher priority second.
// Either side may be absent or hold whatever shape the YAML produced;
// non-mapping values are treated as empty.
func mergeEnv(lower, higher any) map[string]any {
	merged := make(map[string]any)
	for k, v := range envMap(lower) {
		merged[k] = v
	}
	for k, v := range envMap(higher) {
		merged[k] = v
	}
	return merged
}

// envMap normalizes an env value to map[string]any. YAML unmarshals nested
// mappings as map[string]any, but callers may also hand us typed maps.
func envMap(v any) map[string]any {
	switch m := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	default:
		return nil
	}
}

// isFalsy reports whether a value would be dropped on save: nil, false,
// zero numbers, empty strings, and empty mappings or sequences.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

// pruneFalsy returns a copy of layer without its falsy top-level entries.
// Only the top level is filtered: a section that still holds values is
// written as-is, falsy option values inside it included.
func pruneFalsy(layer RawLayer) RawLayer {
	out := make(RawLayer, len(layer))
	for name, section := range layer {
		if isFalsy(section) {
			continue
		}
		out[name] = section
	}
	return out
}
