package types

import "fmt"

// Status is the three-way classification of a file's validation result
type Status int

const (
	// AllPassed means every feature in the file passed (including zero features)
	AllPassed Status = iota
	// HasIssues means at least one feature has violations
	HasIssues
	// ProcessingFailed means the file could not be loaded as a feature collection
	ProcessingFailed
)

// String returns the wire name of the status
func (s Status) String() string {
	switch s {
	case AllPassed:
		return "passed"
	case HasIssues:
		return "has_issues"
	case ProcessingFailed:
		return "processing_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "passed":
		*s = AllPassed
	case "has_issues":
		*s = HasIssues
	case "processing_failed":
		*s = ProcessingFailed
	default:
		return fmt.Errorf("unknown status %q", string(text))
	}
	return nil
}

// FileOutcome is the result of validating one file. Exactly one of the
// variants applies: Issues is non-empty only for HasIssues and Err is set
// only for ProcessingFailed. Build values with Passed, WithIssues and Failed.
type FileOutcome struct {
	Status Status          `json:"status"`
	Issues []FeatureResult `json:"features,omitempty"`
	Err    string          `json:"error,omitempty"`
}

// Passed returns the AllPassed outcome
func Passed() FileOutcome {
	return FileOutcome{Status: AllPassed}
}

// WithIssues returns HasIssues for the given failing features, or AllPassed
// when none of them carries a violation.
func WithIssues(results []FeatureResult) FileOutcome {
	issues := make([]FeatureResult, 0, len(results))
	for _, r := range results {
		if !r.Passed() {
			issues = append(issues, r)
		}
	}
	if len(issues) == 0 {
		return Passed()
	}
	return FileOutcome{Status: HasIssues, Issues: issues}
}

// Failed returns the ProcessingFailed outcome carrying the diagnostic message
func Failed(message string) FileOutcome {
	return FileOutcome{Status: ProcessingFailed, Err: message}
}

// OK reports whether the file passed
func (o FileOutcome) OK() bool {
	return o.Status == AllPassed
}

// ViolationCount returns the total number of violations across all features
func (o FileOutcome) ViolationCount() int {
	n := 0
	for _, r := range o.Issues {
		n += len(r.Violations)
	}
	return n
}
