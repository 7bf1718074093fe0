package ingestion

import "fmt"

// FileReadError represents an error reading an input file
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// PatternError represents an argument that did not resolve to any input file
type PatternError struct {
	Pattern string
	Message string
	Cause   error
}

func (e *PatternError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Pattern, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Pattern, e.Message)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}
