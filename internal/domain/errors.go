package domain

import "fmt"

// ValidationError reports a malformed scheduling policy or booking proposal.
// It names the offending field so callers can surface it on the right input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}
