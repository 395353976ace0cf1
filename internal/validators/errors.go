// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrValidation      = errors.New("validation failed")
)

// FieldError describes one failed rule on one field.
type FieldError struct {
	// Field is the namespaced field path, e.g. "Settings.Assets.CDN.Protocol".
	Field string
	// Tag is the rule that failed, e.g. "oneof".
	Tag string
	// Param is the rule parameter, e.g. "http https". Empty when the rule has none.
	Param string
}

func (e *FieldError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: failed on %q", e.Field, e.Tag)
	}

	return fmt.Sprintf("%s: failed on %q (%s)", e.Field, e.Tag, e.Param)
}
