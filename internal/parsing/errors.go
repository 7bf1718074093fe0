package parsing

import "fmt"

// Error represents a document that could not be loaded as a feature collection.
// Message describes what was wrong; Cause carries the decoder diagnostic when there is one.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse document: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
