// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// isolate clears the bootstrap environment and runs the test in an empty
// directory, so no .env file leaks in.
func isolate(t *testing.T) {
	t.Helper()
	unsetEnvVars(t)
	chdir(t, t.TempDir())
}

// chdir changes the working directory for the duration of the test
// (Go 1.21 equivalent of t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without layers fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyEnvironment)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstLayerWins verifies that earlier layers take precedence and
// later layers only fill empty fields.
func TestBuild_FirstLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Environment: "production"},
		&StructuredConfig{Environment: "staging", ProfilesDir: "/etc/rendr"},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "/etc/rendr", cfg.ProfilesDir)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestBuild_InvalidOutput verifies output format validation.
func TestBuild_InvalidOutput(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Output: "toml"})
	b.withDefaults()

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

// TestBuild_InvalidLogLevel verifies log level validation.
func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{LogLevel: "loud"})
	b.withDefaults()

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

// ── withFlags / withEnv / withJSON ────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_RecordsError verifies that a bad flag is kept in b.err.
func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "production"})

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "production", b.configs[0].Environment)
}

// TestWithJSON_NotSpecified verifies that withJSON is a no-op without a path.
func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Environment: "production"})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_MissingFile verifies that an unreadable file sets b.err.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Defaults verifies the defaults with no sources set.
func TestGetStructuredConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{
		Environment: DefaultEnvironment,
		Output:      OutputJSON,
		LogLevel:    DefaultLogLevel,
	}, cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

// TestGetStructuredConfig_Precedence verifies flags > env > JSON > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	isolate(t)

	jsonPath := writeTempJSONConfig(t, map[string]string{
		"environment":  "from-json",
		"profiles_dir": "/from/json",
		"output":       "yaml",
		"log_level":    "error",
	})
	t.Setenv("NODE_ENV", "from-env")
	t.Setenv("CONFIG_DIR", "/from/env")
	t.Setenv("CONFIG", jsonPath)

	cfg, err := GetStructuredConfig([]string{"-env", "from-flags"})
	require.NoError(t, err)

	assert.Equal(t, "from-flags", cfg.Environment)
	assert.Equal(t, "/from/env", cfg.ProfilesDir)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level())
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

// TestGetStructuredConfig_DotEnv verifies that a .env file in the working
// directory feeds the env layer.
func TestGetStructuredConfig_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("NODE_ENV=production\n"), 0o600))

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}

// TestGetStructuredConfig_JoinsErrors verifies that failing sources abort.
func TestGetStructuredConfig_JoinsErrors(t *testing.T) {
	isolate(t)

	cfg, err := GetStructuredConfig([]string{"-c", "/nonexistent/config.json"})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}
