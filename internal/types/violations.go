// Package types provides type definitions for structured data used throughout the csb-validator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ViolationKind classifies a single field-level rule failure
type ViolationKind string

const (
	// MissingField means a required value is absent, null, or unreadable
	MissingField ViolationKind = "missing_field"
	// OutOfRange means a numeric value lies outside its inclusive interval
	OutOfRange ViolationKind = "out_of_range"
	// MalformedTimestamp means the time value is not ISO 8601
	MalformedTimestamp ViolationKind = "malformed_timestamp"
	// NotInPast means the timestamp is not strictly earlier than the validation instant
	NotInPast ViolationKind = "not_in_past"
)

// Violation represents a single validation failure on one feature
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// FeatureResult holds every violation found on one feature.
// Index is 1-based within the file's feature collection; Line is the 1-based
// source line the feature starts on, or 0 when it could not be located.
type FeatureResult struct {
	Index      int         `json:"index"`
	Line       int         `json:"line,omitempty"`
	Violations []Violation `json:"violations"`
}

// Passed reports whether the feature has no violations
func (r FeatureResult) Passed() bool {
	return len(r.Violations) == 0
}
