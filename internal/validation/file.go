package validation

import (
	"time"

	"github.com/jonathan/csb-validator/internal/ingestion"
	"github.com/jonathan/csb-validator/internal/parsing"
	"github.com/jonathan/csb-validator/internal/types"
)

// Validator validates whole files. The zero value uses the wall clock.
type Validator struct {
	// Clock supplies the validation instant; one reading is taken per file
	Clock func() time.Time
}

// New creates a Validator that compares timestamps against the wall clock
func New() *Validator {
	return &Validator{Clock: time.Now}
}

// At creates a Validator pinned to a fixed instant
func At(now time.Time) *Validator {
	return &Validator{Clock: func() time.Time { return now }}
}

func (v *Validator) now() time.Time {
	if v == nil || v.Clock == nil {
		return time.Now()
	}
	return v.Clock()
}

// ValidateContent validates the raw content of one file.
// Content that cannot be loaded as a feature collection yields ProcessingFailed
// with the parser's diagnostic; otherwise every feature is validated and the
// ones with violations are returned in document order.
func (v *Validator) ValidateContent(content []byte) types.FileOutcome {
	features, err := parsing.ParseFeatures(content)
	if err != nil {
		return types.Failed(err.Error())
	}

	now := v.now()
	var issues []types.FeatureResult
	for i, f := range features {
		result := ValidateFeature(f.Properties, i+1, now)
		if result.Passed() {
			continue
		}
		result.Line = f.Line
		issues = append(issues, result)
	}
	return types.WithIssues(issues)
}

// ValidateFile reads and validates the file at path. Read failures yield ProcessingFailed.
func (v *Validator) ValidateFile(path string) types.FileOutcome {
	content, err := ingestion.ReadFile(path)
	if err != nil {
		return types.Failed(err.Error())
	}
	return v.ValidateContent(content)
}
