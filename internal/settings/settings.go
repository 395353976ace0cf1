// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings decodes a resolved configuration tree into the typed
// [Settings] consumed by the web application, applies environment variable
// overrides and validates the result.
package settings

import (
	"context"
	"net/url"
	"strings"

	"github.com/nuragic/rendr-app-template/internal/resolver"
	"github.com/nuragic/rendr-app-template/internal/validators"
)

// EnvPrefix prefixes every environment variable that overrides a setting,
// e.g. RENDR_ASSETS_CDN_PROTOCOL.
const EnvPrefix = "RENDR_"

// Settings is the schema of the application configuration.
//
// Struct tags:
//   - yaml/json : key names in the configuration tree.
//   - env       : environment variable overriding the field (caarlos0/env).
//   - envPrefix : prefix for nested env lookups.
//   - validate  : rules checked after all layers are merged.
type Settings struct {
	// Assets controls how static assets are built and served.
	Assets Assets `yaml:"assets" json:"assets" envPrefix:"ASSETS_"`

	// APIs lists the external APIs the application talks to, keyed by name.
	// At least one entry is required.
	APIs map[string]API `yaml:"apis" json:"apis" validate:"required,min=1,dive"`

	// RendrApp holds free-form application-level properties.
	RendrApp map[string]string `yaml:"rendrApp" json:"rendrApp"`
}

// Assets holds the asset pipeline settings.
type Assets struct {
	// Minify enables minified asset bundles.
	// Env: RENDR_ASSETS_MINIFY (only "true" takes effect: env values are
	// merged over the profile skipping zero values, so RENDR_ASSETS_MINIFY=false
	// cannot switch off a profile's minify: true)
	Minify bool `yaml:"minify" json:"minify" env:"MINIFY"`

	// CDN describes where assets are served from.
	CDN CDN `yaml:"cdn" json:"cdn" envPrefix:"CDN_"`
}

// CDN describes the content delivery network serving the assets.
type CDN struct {
	// Protocol is either "http" or "https".
	// Env: RENDR_ASSETS_CDN_PROTOCOL
	Protocol string `yaml:"protocol" json:"protocol" env:"PROTOCOL" validate:"required,oneof=http https"`

	// CNames are the host names assets are spread across.
	// Env: RENDR_ASSETS_CDN_CNAMES (comma-separated)
	CNames []string `yaml:"cnames" json:"cnames" env:"CNAMES" envSeparator:"," validate:"required,min=1,dive,required"`

	// PathPrefix is prepended to every asset path. Empty, or "/"-led without
	// a trailing slash.
	// Env: RENDR_ASSETS_CDN_PATH_PREFIX
	PathPrefix string `yaml:"pathPrefix" json:"pathPrefix" env:"PATH_PREFIX" validate:"pathprefix"`
}

// API is an external HTTP API endpoint.
type API struct {
	Host     string `yaml:"host" json:"host" validate:"required"`
	Protocol string `yaml:"protocol" json:"protocol" validate:"required,oneof=http https"`
}

// Load decodes resolved into Settings, merges environment overrides on top
// and validates the result with v.
func Load(ctx context.Context, resolved *resolver.Resolved, v validators.Validator) (*Settings, error) {
	return newSettingsBuilder().
		withResolved(resolved).
		withEnv().
		build(ctx, v)
}

// API returns the API registered under name.
func (s *Settings) API(name string) (API, bool) {
	api, ok := s.APIs[name]
	return api, ok
}

// BaseURL returns the root URL of the API, e.g. "https://api.github.com".
func (a API) BaseURL() string {
	return (&url.URL{Scheme: a.Protocol, Host: a.Host}).String()
}

// BaseURLs returns one asset root per CNAME, e.g. "https://cdn1.example.com/static".
func (c CDN) BaseURLs() []string {
	out := make([]string, 0, len(c.CNames))
	for _, host := range c.CNames {
		u := url.URL{Scheme: c.Protocol, Host: host, Path: c.PathPrefix}
		out = append(out, strings.TrimSuffix(u.String(), "/"))
	}

	return out
}
