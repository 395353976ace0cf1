// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package profile supplies the raw configuration layers that the resolver
// merges: one base node and a set of named environment profiles.
//
// Two sources are provided. [Static] serves in-memory layers, and [Builtin]
// returns the layers shipped with the application. [Dir] reads them from a
// directory of YAML or JSON files.
package profile

import (
	"context"

	"github.com/nuragic/rendr-app-template/internal/resolver"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_source_mock.go -package=mock

// Source loads the base configuration and every environment profile.
type Source interface {
	// Load returns the base node and the profiles keyed by environment name.
	// Callers own the returned values.
	Load(ctx context.Context) (resolver.Node, resolver.Profiles, error)
}
