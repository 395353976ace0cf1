// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Node is one layer of configuration data: a mapping from string keys to
// scalars, sequences ([]any) or nested nodes.
type Node map[string]any

// Profiles maps an environment name to the node overriding the base for
// that environment.
type Profiles map[string]Node

// Kind is the shape class of a configuration value. Two values are
// structurally compatible when their kinds match or the base is [KindNull].
// A null override may only replace a scalar: clearing a mapping or a
// sequence would drop base keys from the result.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf returns the shape class of a normalized value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case Node:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

func compatible(base, override Kind) bool {
	switch {
	case base == override, base == KindNull:
		return true
	case override == KindNull:
		return base == KindScalar
	default:
		return false
	}
}

// NormalizeNode returns a deep copy of m in which every nested mapping is a
// [Node] and every sequence is a []any. Values that cannot appear in a
// configuration tree yield [ErrUnsupportedValue].
func NormalizeNode(m map[string]any) (Node, error) {
	if m == nil {
		return Node{}, nil
	}

	out, err := normalize(m, "")
	if err != nil {
		return nil, err
	}

	return out.(Node), nil
}

func normalize(v any, path string) (any, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return value, nil
	case Node:
		return normalizeMap(value, path)
	case map[string]any:
		return normalizeMap(value, path)
	case map[any]any:
		out := make(Node, len(value))
		for k, item := range value {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v at %q", ErrUnsupportedValue, k, path)
			}
			n, err := normalize(item, join(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			n, err := normalize(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			n, err := normalize(rv.Index(i).Interface(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map with %s keys at %q", ErrUnsupportedValue, rv.Type().Key(), path)
		}
		out := make(Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			n, err := normalize(iter.Value().Interface(), join(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}

	return nil, fmt.Errorf("%w: %T at %q", ErrUnsupportedValue, v, path)
}

func normalizeMap(m map[string]any, path string) (Node, error) {
	out := make(Node, len(m))
	for key, item := range m {
		n, err := normalize(item, join(path, key))
		if err != nil {
			return nil, err
		}
		out[key] = n
	}

	return out, nil
}

// clone deep-copies a normalized value.
func clone(v any) any {
	switch value := v.(type) {
	case Node:
		return value.Clone()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = clone(item)
		}
		return out
	default:
		return value
	}
}

// Clone returns a deep copy of a normalized node.
func (n Node) Clone() Node {
	if n == nil {
		return nil
	}

	out := make(Node, len(n))
	for k, v := range n {
		out[k] = clone(v)
	}

	return out
}

// Lookup walks a dot-separated key path and returns the value found there.
// The empty path returns the node itself.
func (n Node) Lookup(path string) (any, bool) {
	if path == "" {
		return n, true
	}

	var current any = n
	for _, key := range strings.Split(path, ".") {
		node, ok := current.(Node)
		if !ok {
			return nil, false
		}
		current, ok = node[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
