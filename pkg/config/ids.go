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
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// MakeGameConfigID returns a unique config id for a game slug, to avoid
// clashes between multiple configs of the same game.
func MakeGameConfigID(gameSlug string, t time.Time) string {
	return fmt.Sprintf("%s-%d", gameSlug, t.Unix())
}

// WriteGameConfig writes a game layer to storage under a freshly generated
// config id and returns the id.
func WriteGameConfig(store *Store, clock clockwork.Clock, gameSlug string, layer RawLayer) (string, error) {
	id := MakeGameConfigID(gameSlug, clock.Now())
	log.Debug().Msgf("writing new config for %s as %s", gameSlug, id)

	if err := store.WriteLayer(store.GamePath(id), layer); err != nil {
		return "", err
	}
	return id, nil
}

// DuplicateGameConfig copies an existing game config document under a
// freshly generated id and returns the new id.
func DuplicateGameConfig(store *Store, clock clockwork.Clock, gameSlug, sourceConfigID string) (string, error) {
	id := MakeGameConfigID(gameSlug, clock.Now())
	log.Debug().Msgf("duplicating game config %s as %s", sourceConfigID, id)

	if err := store.Copy(store.GamePath(sourceConfigID), store.GamePath(id)); err != nil {
		return "", err
	}
	return id, nil
}
