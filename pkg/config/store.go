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
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// SystemFile is the single system-level document.
	SystemFile = "system.yml"
	// RunnersDir holds one document per runner id.
	RunnersDir = "runners"
	// GamesDir holds one document per game-config id.
	GamesDir = "games"

	layerExt = ".yml"
)

// Store addresses the durable YAML documents backing each config level:
// one global system document, one document per runner id, one per
// game-config id. A missing document reads as an empty layer; malformed
// content is an error.
//
// Writes are plain replacement, not atomic. Concurrent writers to the same
// (level, identifier) must be serialized externally.
type Store struct {
	fs      afero.Fs
	baseDir string
}

// NewStore creates a store rooted at baseDir on fs.
func NewStore(fs afero.Fs, baseDir string) *Store {
	return &Store{fs: fs, baseDir: baseDir}
}

// SystemPath returns the path of the system-level document.
func (s *Store) SystemPath() string {
	return filepath.Join(s.baseDir, SystemFile)
}

// RunnerPath returns the path of a runner-level document, or "" when the
// runner id is unset.
func (s *Store) RunnerPath(runnerID string) string {
	if runnerID == "" {
		return ""
	}
	return filepath.Join(s.baseDir, RunnersDir, runnerID+layerExt)
}

// GamePath returns the path of a game-level document, or "" when the
// game-config id is unset.
func (s *Store) GamePath(gameConfigID string) string {
	if gameConfigID == "" {
		return ""
	}
	return filepath.Join(s.baseDir, GamesDir, gameConfigID+layerExt)
}

// ReadLayer loads a raw layer document. An empty path or an absent file
// yields an empty layer. Content that does not deserialize to a mapping of
// sections is an error: the resolver cannot safely guess at it.
func (s *Store) ReadLayer(path string) (RawLayer, error) {
	if path == "" {
		return RawLayer{}, nil
	}

	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return RawLayer{}, nil
		}
		return nil, fmt.Errorf("failed to stat config document: %w", err)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config document: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config document %s: %w", path, err)
	}

	layer := make(RawLayer, len(doc))
	for name, v := range doc {
		if v == nil {
			layer[name] = Section{}
			continue
		}
		section, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("config document %s: section %q is not a mapping", path, name)
		}
		layer[name] = section
	}

	return layer, nil
}

// WriteLayer persists a raw layer document, creating parent directories as
// needed.
func (s *Store) WriteLayer(path string, layer RawLayer) error {
	data, err := yaml.Marshal(layer)
	if err != nil {
		return fmt.Errorf("failed to marshal config document: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config document: %w", err)
	}
	return nil
}

// Exists reports whether a document is present at path.
func (s *Store) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := s.fs.Stat(path)
	return err == nil
}

// Remove deletes the document at path.
func (s *Store) Remove(path string) error {
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove config document: %w", err)
	}
	return nil
}

// Copy duplicates the document at src to dst byte for byte.
func (s *Store) Copy(src, dst string) error {
	data, err := afero.ReadFile(s.fs, src)
	if err != nil {
		return fmt.Errorf("failed to read source config document: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, dst, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config document copy: %w", err)
	}
	return nil
}
