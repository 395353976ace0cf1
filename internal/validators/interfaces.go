// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides struct validation for configuration types.
//
// Core concepts:
//   - Validator: generic interface to validate a struct value, optionally
//     restricted to a set of named fields.
//   - StructValidator: the default implementation, driven by `validate`
//     struct tags (go-playground/validator) plus the custom tags registered
//     in this package.
//
// Failures are reported as a single error matching [ErrValidation] that
// joins one [FieldError] per failing field.
package validators

import "context"

// Validator defines a generic validation interface for struct values.
type Validator interface {

	// Validate validates the provided struct and optionally restricts
	// validation to specific top-level field names.
	Validate(context.Context, any, ...string) error
}
