// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import (
	"context"

	"github.com/nuragic/rendr-app-template/internal/resolver"
)

// Environment names with a built-in profile.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Static is a [Source] over in-memory layers.
type Static struct {
	Base     resolver.Node
	Profiles resolver.Profiles
}

// NewStatic returns a Source serving base and profiles.
func NewStatic(base resolver.Node, profiles resolver.Profiles) *Static {
	return &Static{Base: base, Profiles: profiles}
}

// Load returns deep copies of the layers, so callers cannot change the source.
func (s *Static) Load(ctx context.Context) (resolver.Node, resolver.Profiles, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	base, err := resolver.NormalizeNode(s.Base)
	if err != nil {
		return nil, nil, err
	}

	profiles := make(resolver.Profiles, len(s.Profiles))
	for name, p := range s.Profiles {
		n, err := resolver.NormalizeNode(p)
		if err != nil {
			return nil, nil, err
		}
		profiles[name] = n
	}

	return base, profiles, nil
}

// Builtin returns the layers shipped with the application.
//
// The base describes a local setup: unminified assets served over plain http
// from localhost. The production profile turns on minification and https;
// development serves assets under the /dev path prefix.
func Builtin() *Static {
	return NewStatic(
		resolver.Node{
			"assets": resolver.Node{
				"minify": false,
				"cdn": resolver.Node{
					"protocol":   "http",
					"cnames":     []any{"localhost"},
					"pathPrefix": "",
				},
			},
			"apis": resolver.Node{
				"main": resolver.Node{
					"host":     "api.github.com",
					"protocol": "https",
				},
			},
			"rendrApp": resolver.Node{},
		},
		resolver.Profiles{
			EnvProduction: {
				"assets": resolver.Node{
					"minify": true,
					"cdn": resolver.Node{
						"protocol":   "https",
						"cnames":     []any{"localhost"},
						"pathPrefix": "",
					},
				},
				"apis": resolver.Node{
					"main": resolver.Node{
						"host":     "api.github.com",
						"protocol": "https",
					},
				},
				"rendrApp": resolver.Node{
					"someProperty": "someValue",
				},
			},
			EnvDevelopment: {
				"assets": resolver.Node{
					"cdn": resolver.Node{
						"pathPrefix": "/dev",
					},
				},
			},
		},
	)
}
