// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyEnvironment is returned by [Resolve] when no environment name is given.
	ErrEmptyEnvironment = errors.New("environment name is empty")
	// ErrInvalidProfile is matched by every [InvalidProfileError].
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrUnsupportedValue is returned when a node holds a value that is not a
	// scalar, a sequence or a mapping with string keys.
	ErrUnsupportedValue = errors.New("unsupported config value")
)

// Conflict describes a single key path where a profile changes the shape of
// the base tree.
type Conflict struct {
	Path     string
	Base     Kind
	Override Kind
}

func (c Conflict) String() string {
	return fmt.Sprintf("%q is a %s in base but a %s in override", c.Path, c.Base, c.Override)
}

// InvalidProfileError is returned by [Resolve] when the selected profile is
// structurally incompatible with the base. Conflicts are sorted by path.
type InvalidProfileError struct {
	Environment string
	Conflicts   []Conflict
}

func (e *InvalidProfileError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, c.String())
	}

	return fmt.Sprintf("invalid profile %q: %s", e.Environment, strings.Join(parts, "; "))
}

// Is reports whether target is [ErrInvalidProfile].
func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}
