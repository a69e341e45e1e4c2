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

// Package settings holds the launcher's own configuration: where the
// layered config documents live, logging behavior, and a stable instance
// id. Stored as a single TOML file, separate from the per-game YAML
// documents it points at.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/StrataProject/strata-core/pkg/helpers/syncutil"
	"github.com/adrg/xdg"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "STRATA_CFG"
	SettingsFile  = "strata.toml"
	appDirName    = "strata"
)

// Values is the serialized shape of the settings file.
type Values struct {
	Paths        Paths  `toml:"paths,omitempty"`
	InstanceID   string `toml:"instance_id,omitempty"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

// Paths is the directory layout for config documents and logs. Empty
// fields fall back to the XDG defaults at read time.
type Paths struct {
	ConfigDir string `toml:"config_dir,omitempty"`
	LogDir    string `toml:"log_dir,omitempty"`
	CacheDir  string `toml:"cache_dir,omitempty"`
}

// BaseDefaults are the settings used before a file exists on disk.
var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

// Instance is a loaded settings file with guarded accessors.
type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewSettings loads settings from configDir (or the STRATA_CFG env
// override), writing a default file first if none exists.
//
//nolint:gocritic // settings struct copied for immutability
func NewSettings(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env settings path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, SettingsFile)
	}

	settings := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default settings to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings directory: %w", err)
		}

		err = settings.Save()
		if err != nil {
			return nil, err
		}
	}

	err := settings.Load()
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Load reads the settings file, layering file values over the defaults so
// fields absent from the file keep their default values.
func (s *Instance) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfgPath == "" {
		return errors.New("settings path not set")
	}

	data, err := os.ReadFile(s.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	newVals := s.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	s.vals = newVals
	return nil
}

// Save writes the current settings to disk, stamping the schema version and
// generating an instance id on first save.
func (s *Instance) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfgPath == "" {
		return errors.New("settings path not set")
	}

	s.vals.ConfigSchema = SchemaVersion

	if s.vals.InstanceID == "" {
		newID := uuid.New().String()
		s.vals.InstanceID = newID
		log.Info().Msgf("generated new instance id: %s", newID)
	}

	data, err := toml.Marshal(&s.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// DefaultConfigDir returns the XDG config directory for the launcher.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// DefaultLogDir returns the XDG state directory used for logs.
func DefaultLogDir() string {
	return filepath.Join(xdg.StateHome, appDirName)
}

// DefaultCacheDir returns the XDG cache directory for the launcher.
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, appDirName)
}

// ConfigDir returns the directory holding the layered config documents.
func (s *Instance) ConfigDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vals.Paths.ConfigDir != "" {
		return s.vals.Paths.ConfigDir
	}
	return DefaultConfigDir()
}

// LogDir returns the directory logs are written to.
func (s *Instance) LogDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vals.Paths.LogDir != "" {
		return s.vals.Paths.LogDir
	}
	return DefaultLogDir()
}

// CacheDir returns the cache directory.
func (s *Instance) CacheDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.vals.Paths.CacheDir != "" {
		return s.vals.Paths.CacheDir
	}
	return DefaultCacheDir()
}

// InstanceID returns the stable id generated on first save.
func (s *Instance) InstanceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals.InstanceID
}

func (s *Instance) DebugLogging() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vals.DebugLogging
}

func (s *Instance) SetDebugLogging(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals.DebugLogging = enabled
	if enabled {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
