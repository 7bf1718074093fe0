package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties_Lookup(t *testing.T) {
	props := NewProperties(map[string]any{
		"longitude": 10.5,
		"depth":     nil,
		"time":      "2020-01-01T00:00:00Z",
		"heading":   "north",
	})

	lon, state := props.Lookup("longitude").Number()
	assert.Equal(t, FieldValid, state)
	assert.Equal(t, 10.5, lon)

	assert.Equal(t, FieldMissing, props.Lookup("depth").State())
	assert.Equal(t, FieldMissing, props.Lookup("latitude").State())

	_, state = props.Lookup("heading").Number()
	assert.Equal(t, FieldWrongShape, state)

	ts, state := props.Lookup("time").Text()
	assert.Equal(t, FieldValid, state)
	assert.Equal(t, "2020-01-01T00:00:00Z", ts)

	_, state = props.Lookup("longitude").Text()
	assert.Equal(t, FieldWrongShape, state)
}

func TestProperties_NonObjectBehavesEmpty(t *testing.T) {
	for _, v := range []any{nil, "text", 42.0, []any{1.0, 2.0}} {
		props := NewProperties(v)
		assert.Equal(t, FieldMissing, props.Lookup("depth").State())
		_, state := props.Lookup("longitude").Number()
		assert.Equal(t, FieldMissing, state)
	}
}

func TestField_Raw(t *testing.T) {
	tests := []struct {
		value    any
		expected string
	}{
		{value: 200.0, expected: "200"},
		{value: -0.25, expected: "-0.25"},
		{value: math.Inf(1), expected: "inf"},
		{value: math.Inf(-1), expected: "-inf"},
		{value: "abc", expected: `"abc"`},
		{value: true, expected: "true"},
		{value: map[string]any{}, expected: "object"},
		{value: []any{}, expected: "array"},
	}

	for _, tt := range tests {
		f := NewProperties(map[string]any{"x": tt.value}).Lookup("x")
		assert.Equal(t, tt.expected, f.Raw())
	}
}
