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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/StrataProject/strata-core/pkg/config"
	"github.com/StrataProject/strata-core/pkg/helpers"
	"github.com/StrataProject/strata-core/pkg/options"
	"github.com/StrataProject/strata-core/pkg/settings"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	runnerID := flag.String(
		"runner",
		"",
		"runner id to resolve",
	)
	gameConfigID := flag.String(
		"game",
		"",
		"game config id to resolve",
	)
	levelArg := flag.String(
		"level",
		"",
		"view to print: system, runner or game (default: deepest available)",
	)
	configDir := flag.String(
		"config-dir",
		"",
		"override the config document directory",
	)
	showRaw := flag.Bool(
		"raw",
		false,
		"print the writable document instead of the cascaded view",
	)
	watchMode := flag.Bool(
		"watch",
		false,
		"stay running and re-print the view when documents change on disk",
	)
	debugMode := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	sets, err := settings.NewSettings(settings.DefaultConfigDir(), settings.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if *debugMode {
		sets.SetDebugLogging(true)
	}

	logWriters := []io.Writer{os.Stderr}
	if err := helpers.InitLogging(sets.LogDir(), logWriters); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	baseDir := sets.ConfigDir()
	if *configDir != "" {
		baseDir = *configDir
	}

	store := config.NewStore(afero.NewOsFs(), baseDir)
	registry := options.NewRegistry()

	resolver, err := config.New(store, registry, config.Params{
		RunnerID:     *runnerID,
		GameConfigID: *gameConfigID,
	})
	if err != nil {
		return fmt.Errorf("failed to build config resolver: %w", err)
	}

	level := resolver.Level()
	if *levelArg != "" {
		level, err = config.ParseLevel(*levelArg)
		if err != nil {
			return err
		}
	}

	if err := printView(resolver, level, *showRaw); err != nil {
		return err
	}

	if !*watchMode {
		return nil
	}

	watcher, err := config.NewWatcher(resolver, func(reloadErr error) {
		if reloadErr != nil {
			log.Error().Err(reloadErr).Msg("reload failed")
			return
		}
		if err := printView(resolver, level, *showRaw); err != nil {
			log.Error().Err(err).Msg("failed to print view")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Error().Msgf("error closing watcher: %s", err)
		}
	}()

	log.Info().Msgf("watching %s for changes", baseDir)

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	return nil
}

func printView(resolver *config.Resolver, level config.Level, raw bool) error {
	var view any
	if raw {
		view = resolver.Raw()
	} else {
		switch level {
		case config.LevelGame:
			view = resolver.Game()
		case config.LevelRunner:
			view = resolver.Runner()
		case config.LevelSystem:
			view = resolver.System()
		}
	}

	out, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}

	_, err = os.Stdout.Write(out)
	return err
}
