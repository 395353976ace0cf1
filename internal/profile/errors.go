// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package profile

import "errors"

var (
	// ErrDuplicateProfile is returned when two files define the same profile,
	// e.g. production.yml and production.json.
	ErrDuplicateProfile = errors.New("duplicate profile")
	// ErrInvalidDocument is returned when a file does not hold a mapping at
	// its top level.
	ErrInvalidDocument = errors.New("config document is not a mapping")
	// ErrNotADirectory is returned when the profiles path is not a directory.
	ErrNotADirectory = errors.New("profiles path is not a directory")
)
