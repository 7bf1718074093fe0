package types

import (
	"math"
	"strconv"
)

// FieldState is the tri-state result of reading one property
type FieldState int

const (
	// FieldMissing means the key is absent, null, or the properties are not an object
	FieldMissing FieldState = iota
	// FieldValid means the value is present with the expected shape
	FieldValid
	// FieldWrongShape means the value is present but of an unexpected type
	FieldWrongShape
)

// Properties gives read-only access to a feature's decoded property mapping.
// A value that is not a JSON object behaves like an empty mapping.
type Properties struct {
	values map[string]any
}

// NewProperties wraps a decoded properties value
func NewProperties(v any) Properties {
	m, _ := v.(map[string]any)
	return Properties{values: m}
}

// Lookup returns the named field
func (p Properties) Lookup(name string) Field {
	v, ok := p.values[name]
	if !ok || v == nil {
		return Field{Name: name}
	}
	return Field{Name: name, Value: v, present: true}
}

// Field is one property looked up by name
type Field struct {
	Name    string
	Value   any
	present bool
}

// State reports presence without checking the value's type
func (f Field) State() FieldState {
	if !f.present {
		return FieldMissing
	}
	return FieldValid
}

// Number returns the value as a float64
func (f Field) Number() (float64, FieldState) {
	if !f.present {
		return 0, FieldMissing
	}
	switch n := f.Value.(type) {
	case float64:
		return n, FieldValid
	case float32:
		return float64(n), FieldValid
	case int:
		return float64(n), FieldValid
	case int64:
		return float64(n), FieldValid
	case uint64:
		return float64(n), FieldValid
	default:
		return 0, FieldWrongShape
	}
}

// Text returns the value as a string
func (f Field) Text() (string, FieldState) {
	if !f.present {
		return "", FieldMissing
	}
	s, ok := f.Value.(string)
	if !ok {
		return "", FieldWrongShape
	}
	return s, FieldValid
}

// Raw renders the value for use in messages
func (f Field) Raw() string {
	switch v := f.Value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case float64:
		return FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		n, state := f.Number()
		if state == FieldValid {
			return FormatNumber(n)
		}
		return "value"
	}
}

// FormatNumber prints a number with the shortest exact representation.
// Infinities, which come from literals beyond the float64 range, print as
// "inf" and "-inf".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
