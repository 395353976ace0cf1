// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a base configuration tree and a set of named
// environment profiles into a single immutable configuration.
//
// The merge is structural: nested mappings are merged key by key, every other
// value (scalars and sequences) is replaced wholesale by the profile value.
// A profile that changes the shape of the tree at some key path (for example
// a scalar where the base holds a mapping) is rejected with
// [InvalidProfileError].
//
// An environment without a profile is not an error: the base tree is already
// a complete configuration and is returned unchanged.
package resolver
