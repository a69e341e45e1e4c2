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

// Package slugs converts game titles into identifiers safe to embed in
// config document names.
package slugs

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	metadataRegex    = regexp.MustCompile(`[([][^)\]]*[)\]]`)
	nonAlphanumRegex = regexp.MustCompile(`[^a-z0-9]+`)

	symbolReplacer = strings.NewReplacer(
		"&", " and ",
		"+", " plus ",
		"'", "",
		"’", "",
	)
)

// Slugify converts a game title to a lowercase, hyphen-separated slug.
// Deterministic and idempotent: Slugify(Slugify(x)) == Slugify(x).
//
// Example:
//
//	Slugify("The Legend of Zelda: Ocarina of Time (USA)")
//	→ "the-legend-of-zelda-ocarina-of-time"
func Slugify(title string) string {
	s := removeDiacritics(title)
	s = metadataRegex.ReplaceAllString(s, " ")
	s = symbolReplacer.Replace(s)
	s = strings.ToLower(s)
	s = nonAlphanumRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// removeDiacritics strips diacritical marks from text, so "Pokémon"
// slugifies the same as "Pokemon".
func removeDiacritics(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	if normalized, _, err := transform.String(t, s); err == nil {
		return normalized
	}
	return s
}
