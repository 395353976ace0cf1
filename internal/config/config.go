// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// Default values applied when no source sets a field.
const (
	DefaultEnvironment = "development"
	DefaultOutput      = OutputJSON
	DefaultLogLevel    = "info"
)

// Output formats of the resolved configuration.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// StructuredConfig is the bootstrap configuration of the process. It is
// populated by merging command-line flags, environment variables and an
// optional JSON file.
//
// Struct tags:
//   - env : environment variable name (caarlos0/env).
//   - json: key in the JSON config file.
type StructuredConfig struct {
	// Environment names the profile to resolve, e.g. "production".
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV" json:"environment"`

	// ProfilesDir is the directory holding base and profile files. When
	// empty, the built-in profiles are used.
	// Env: CONFIG_DIR
	ProfilesDir string `env:"CONFIG_DIR" json:"profiles_dir"`

	// Output is the format the resolved configuration is printed in:
	// "json" or "yaml".
	// Env: CONFIG_OUTPUT
	Output string `env:"CONFIG_OUTPUT" json:"output"`

	// LogLevel is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONFilePath is the optional path to a JSON config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Level returns the parsed log level. It falls back to info for values that
// did not pass validation.
func (cfg *StructuredConfig) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		return zerolog.InfoLevel
	}

	return level
}

// GetStructuredConfig loads, merges, and validates the bootstrap
// configuration from all available sources in the following priority order
// (first source wins for non-empty fields):
//  1. Command-line flags parsed from args
//  2. Environment variables, after .env files are loaded
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
