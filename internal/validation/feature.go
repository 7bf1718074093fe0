package validation

import (
	"time"

	"github.com/jonathan/csb-validator/internal/types"
)

// ValidateFeature runs every field rule against one feature's properties and
// collects all violations in rule order. index is the 1-based position of the
// feature in its collection. Properties of any shape are accepted; a value that
// is not an object reports every required field as missing.
func ValidateFeature(properties any, index int, now time.Time) types.FeatureResult {
	props := types.NewProperties(properties)
	result := types.FeatureResult{Index: index, Violations: []types.Violation{}}
	for _, r := range fieldRules {
		if v, failed := r.check(props, now); failed {
			result.Violations = append(result.Violations, v)
		}
	}
	return result
}
