package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every line-level parse failure.
	ErrMalformedLine = errors.New("malformed log line")

	// ErrValueParse is matched when a value token is not a floating-point number.
	ErrValueParse = errors.New("value is not a floating-point number")
)

// LineError reports a malformed line and where it was found.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %v (%q)", e.Line, ErrMalformedLine, e.Err, e.Text)
}

// Unwrap exposes both ErrMalformedLine and the specific cause to errors.Is.
func (e *LineError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}
