// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/nuragic/rendr-app-template/internal/resolver"
	"github.com/nuragic/rendr-app-template/internal/validators"
	"gopkg.in/yaml.v3"
)

// settingsBuilder collects Settings layers. Later layers override earlier
// ones for every non-zero field.
type settingsBuilder struct {
	layers []*Settings
	err    error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		layers: make([]*Settings, 0, 2),
	}
}

func (b *settingsBuilder) build(ctx context.Context, v validators.Validator) (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}
	if len(b.layers) == 0 {
		return nil, ErrNoLayers
	}

	settings := b.layers[0]
	for _, layer := range b.layers[1:] {
		if err := mergo.Merge(settings, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := v.Validate(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return settings, nil
}

func (b *settingsBuilder) withResolved(resolved *resolver.Resolved) *settingsBuilder {
	s, err := decode(resolved.Node())
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, s)
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	s := &Settings{}
	if err := env.ParseWithOptions(s, env.Options{Prefix: EnvPrefix}); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error getting env settings: %w", err))
		return b
	}

	b.layers = append(b.layers, s)
	return b
}

// decode maps a configuration tree onto Settings, rejecting unknown keys.
func decode(node resolver.Node) (*Settings, error) {
	data, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("error encoding resolved config: %w", err)
	}

	s := &Settings{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return s, nil
}
