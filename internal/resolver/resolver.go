// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Resolved is the final configuration of a process: the base tree with the
// profile of one environment merged over it. It is never modified after
// [Resolve] returns; accessors hand out copies, so a *Resolved may be shared
// between goroutines without locking.
type Resolved struct {
	environment string
	matched     bool
	root        Node
}

// Resolve merges profiles[environment] over base.
//
// Mappings present on both sides are merged recursively; any other value in
// the profile replaces the base value at the same key path. When no profile
// exists for environment the result equals base. Neither base nor profiles is
// modified.
//
// Resolve returns [ErrEmptyEnvironment] for an empty environment name and an
// [*InvalidProfileError] listing every key path where the profile changes the
// shape of the base tree.
func Resolve(environment string, base Node, profiles Profiles) (*Resolved, error) {
	if environment == "" {
		return nil, ErrEmptyEnvironment
	}

	root, err := NormalizeNode(base)
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}

	profile, ok := profiles[environment]
	if !ok {
		return &Resolved{environment: environment, root: root}, nil
	}

	override, err := NormalizeNode(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", environment, err)
	}

	var conflicts []Conflict
	merge(root, override, "", &conflicts)
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool {
			return conflicts[i].Path < conflicts[j].Path
		})
		return nil, &InvalidProfileError{Environment: environment, Conflicts: conflicts}
	}

	return &Resolved{environment: environment, matched: true, root: root}, nil
}

// merge writes override into dst in place. dst must be owned by the caller.
func merge(dst, override Node, path string, conflicts *[]Conflict) {
	for key, value := range override {
		keyPath := join(path, key)

		current, exists := dst[key]
		if !exists {
			dst[key] = clone(value)
			continue
		}

		baseKind, overrideKind := KindOf(current), KindOf(value)
		if !compatible(baseKind, overrideKind) {
			*conflicts = append(*conflicts, Conflict{Path: keyPath, Base: baseKind, Override: overrideKind})
			continue
		}

		if baseKind == KindMapping && overrideKind == KindMapping {
			merge(current.(Node), value.(Node), keyPath, conflicts)
			continue
		}

		dst[key] = clone(value)
	}
}

// Environment returns the environment name the configuration was resolved for.
func (r *Resolved) Environment() string {
	return r.environment
}

// Matched reports whether a profile existed for the environment. When false
// the configuration is the base tree.
func (r *Resolved) Matched() bool {
	return r.matched
}

// Node returns a deep copy of the resolved tree.
func (r *Resolved) Node() Node {
	return r.root.Clone()
}

// Lookup returns a copy of the value at a dot-separated key path.
func (r *Resolved) Lookup(path string) (any, bool) {
	v, ok := r.root.Lookup(path)
	if !ok {
		return nil, false
	}

	return clone(v), true
}

func (r *Resolved) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.root)
}

func (r *Resolved) MarshalYAML() (any, error) {
	return r.root.Clone(), nil
}
