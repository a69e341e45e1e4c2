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
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeSection decodes a cascaded view (or any section) into a typed
// struct, using `config` field tags. Input is weakly typed: YAML scalars
// decode into the destination's field types where a sensible conversion
// exists.
func DecodeSection(section Section, dest any) error {
	decoderConfig := &mapstructure.DecoderConfig{
		Result:           dest,
		TagName:          "config",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("failed to decode section: %w", err)
	}
	return nil
}
