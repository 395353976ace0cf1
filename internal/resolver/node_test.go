// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNode_ConvertsNestedMaps(t *testing.T) {
	in := map[string]any{
		"plain":  map[string]any{"a": 1},
		"anykey": map[any]any{"b": "x"},
		"typed":  map[string]string{"c": "y"},
		"list":   []string{"one", "two"},
		"nested": []any{map[string]any{"d": true}},
	}

	out, err := NormalizeNode(in)
	require.NoError(t, err)

	assert.Equal(t, Node{
		"plain":  Node{"a": 1},
		"anykey": Node{"b": "x"},
		"typed":  Node{"c": "y"},
		"list":   []any{"one", "two"},
		"nested": []any{Node{"d": true}},
	}, out)
}

func TestNormalizeNode_Nil(t *testing.T) {
	out, err := NormalizeNode(nil)
	require.NoError(t, err)
	assert.Equal(t, Node{}, out)
}

func TestNormalizeNode_RejectsNonStringKeys(t *testing.T) {
	_, err := NormalizeNode(map[string]any{"bad": map[any]any{1: "x"}})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestNormalizeNode_RejectsUnsupportedTypes(t *testing.T) {
	_, err := NormalizeNode(map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{"null", nil, KindNull},
		{"string", "x", KindScalar},
		{"bool", true, KindScalar},
		{"number", 1.5, KindScalar},
		{"sequence", []any{1}, KindSequence},
		{"mapping", Node{}, KindMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.value))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestNode_CloneIsDeep(t *testing.T) {
	n := Node{"a": Node{"b": []any{Node{"c": 1}}}}
	c := n.Clone()

	c["a"].(Node)["b"].([]any)[0].(Node)["c"] = 2
	assert.Equal(t, 1, n["a"].(Node)["b"].([]any)[0].(Node)["c"])
}

func TestNode_LookupEmptyPath(t *testing.T) {
	n := Node{"a": 1}
	v, ok := n.Lookup("")
	assert.True(t, ok)
	assert.Equal(t, n, v)
}
