// Package validation applies the CSB field rules to features and files.
package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/csb-validator/internal/types"
)

// validate is shared; validator.Validate is safe for concurrent use
var validate = validator.New()

// rule checks one field of a feature's properties and returns at most one violation
type rule interface {
	check(props types.Properties, now time.Time) (types.Violation, bool)
}

// fieldRules is the rule set in evaluation order. The order defines the order
// of violations within a FeatureResult.
var fieldRules = []rule{
	rangeRule{field: "longitude", label: "Longitude", min: -180, max: 180},
	rangeRule{field: "latitude", label: "Latitude", min: -90, max: 90},
	presenceRule{field: "depth", label: "Depth"},
	rangeRule{field: "heading", label: "Heading", min: 0, max: 360, optional: true},
	timestampRule{field: "time", label: "Timestamp"},
}

// rangeRule requires a number within [min, max]
type rangeRule struct {
	field    string
	label    string
	min, max float64
	optional bool
}

func (r rangeRule) check(props types.Properties, _ time.Time) (types.Violation, bool) {
	f := props.Lookup(r.field)
	v, state := f.Number()
	switch state {
	case types.FieldMissing:
		if r.optional {
			return types.Violation{}, false
		}
		return blank(r.field, r.label), true
	case types.FieldWrongShape:
		return types.Violation{
			Field:   r.field,
			Kind:    types.MissingField,
			Message: fmt.Sprintf("%s is not a valid number: %s", r.label, f.Raw()),
		}, true
	}

	err := validate.Var(v, rangeTag(r.min, r.max))
	if err == nil {
		return types.Violation{}, false
	}

	msg := fmt.Sprintf("%s should be ≤ %s: %s", r.label, types.FormatNumber(r.max), types.FormatNumber(v))
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "gte" {
		msg = fmt.Sprintf("%s should be ≥ %s: %s", r.label, types.FormatNumber(r.min), types.FormatNumber(v))
	}
	return types.Violation{Field: r.field, Kind: types.OutOfRange, Message: msg}, true
}

// rangeTag builds the validator tag for an inclusive interval
func rangeTag(lo, hi float64) string {
	return fmt.Sprintf("gte=%s,lte=%s", types.FormatNumber(lo), types.FormatNumber(hi))
}

// presenceRule requires a non-null value of any type
type presenceRule struct {
	field string
	label string
}

func (r presenceRule) check(props types.Properties, _ time.Time) (types.Violation, bool) {
	if props.Lookup(r.field).State() == types.FieldMissing {
		return blank(r.field, r.label), true
	}
	return types.Violation{}, false
}

// timestampRule requires an ISO 8601 string strictly earlier than now
type timestampRule struct {
	field string
	label string
}

func (r timestampRule) check(props types.Properties, now time.Time) (types.Violation, bool) {
	f := props.Lookup(r.field)
	raw, state := f.Text()
	switch {
	case state == types.FieldMissing, state == types.FieldValid && raw == "":
		return blank(r.field, r.label), true
	case state == types.FieldWrongShape:
		return types.Violation{
			Field:   r.field,
			Kind:    types.MalformedTimestamp,
			Message: fmt.Sprintf("Invalid ISO 8601 timestamp: %s", f.Raw()),
		}, true
	}

	ts, err := ParseTimestamp(raw)
	if err != nil {
		return types.Violation{
			Field:   r.field,
			Kind:    types.MalformedTimestamp,
			Message: fmt.Sprintf("Invalid ISO 8601 timestamp: %s", raw),
		}, true
	}
	if !ts.Before(now) {
		return types.Violation{
			Field:   r.field,
			Kind:    types.NotInPast,
			Message: fmt.Sprintf("%s should be in the past: %s", r.label, ts.Format(time.DateOnly)),
		}, true
	}
	return types.Violation{}, false
}

func blank(field, label string) types.Violation {
	return types.Violation{
		Field:   field,
		Kind:    types.MissingField,
		Message: fmt.Sprintf("%s cannot be blank", label),
	}
}
