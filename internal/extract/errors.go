package extract

import "fmt"

// Error represents a failure to extract text from an uploaded document:
// a malformed file, an unsupported format, or an external-tool failure.
type Error struct {
	Filename string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Filename, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
