package main

import "fmt"

// FormatError is returned when rendered fixture source is structurally malformed.
type FormatError struct {
	OriginalError error
	Source        string // The rendered source that was not written
	LineNum       int
	Column        int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting error at line %d:%d: %v", e.LineNum, e.Column, e.OriginalError)
}

func (e *FormatError) Unwrap() error {
	return e.OriginalError
}

// ValidationError reports a generation parameter that cannot produce a fixture.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
