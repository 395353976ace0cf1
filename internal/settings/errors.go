// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrSchema is returned when the resolved tree does not match the
	// [Settings] schema (unknown keys or values of the wrong type).
	ErrSchema = errors.New("configuration does not match settings schema")
	// ErrInvalidSettings is returned when merged settings fail validation.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrNoLayers is returned when the builder has nothing to merge.
	ErrNoLayers = errors.New("no settings layers")
)
