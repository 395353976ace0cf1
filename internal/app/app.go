// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root of the configuration subsystem.
//
// [New] runs once at process start: it loads the configuration layers,
// resolves them for the selected environment and decodes the result into
// typed settings. The returned *App is immutable and is passed explicitly to
// every consumer; there is no package-level "current config".
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuragic/rendr-app-template/internal/config"
	"github.com/nuragic/rendr-app-template/internal/logger"
	"github.com/nuragic/rendr-app-template/internal/profile"
	"github.com/nuragic/rendr-app-template/internal/resolver"
	"github.com/nuragic/rendr-app-template/internal/settings"
	"github.com/nuragic/rendr-app-template/internal/validators"
)

// ErrNilSource is returned by [New] when no profile source is given.
var ErrNilSource = errors.New("profile source is nil")

// App holds the resolved configuration of the running process.
type App struct {
	config   *resolver.Resolved
	settings *settings.Settings
}

// New resolves the configuration for cfg.Environment from source.
// Any error means the process must not start.
func New(ctx context.Context, cfg *config.StructuredConfig, source profile.Source, log *logger.Logger) (*App, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	log = log.Component("app")

	base, profiles, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading profiles: %w", err)
	}

	resolved, err := resolver.Resolve(cfg.Environment, base, profiles)
	if err != nil {
		return nil, fmt.Errorf("error resolving config: %w", err)
	}

	if !resolved.Matched() {
		log.Warn().
			Str("environment", cfg.Environment).
			Int("profiles", len(profiles)).
			Msg("no profile for environment, using base configuration")
	}

	s, err := settings.Load(ctx, resolved, validators.NewStructValidator())
	if err != nil {
		return nil, fmt.Errorf("error loading settings: %w", err)
	}

	log.Info().
		Str("environment", resolved.Environment()).
		Bool("profile", resolved.Matched()).
		Bool("minify", s.Assets.Minify).
		Msg("configuration resolved")

	return &App{config: resolved, settings: s}, nil
}

// NewSource picks the profile source for cfg: the directory when
// cfg.ProfilesDir is set, the built-in profiles otherwise.
func NewSource(cfg *config.StructuredConfig, log *logger.Logger) (profile.Source, error) {
	if cfg.ProfilesDir == "" {
		return profile.Builtin(), nil
	}

	return profile.NewDir(cfg.ProfilesDir, log)
}

// Config returns the resolved configuration tree.
func (a *App) Config() *resolver.Resolved {
	return a.config
}

// Settings returns the typed settings. Callers must treat them as read-only.
func (a *App) Settings() *settings.Settings {
	return a.settings
}
