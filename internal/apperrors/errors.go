// Package apperrors defines the error taxonomy shared by the session facade
// and the HTTP handlers. Validation failures are surfaced to the caller and
// never mutate state; persistence read failures are recovered locally and
// never reach this package.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports well-typed but invalid input, such as an empty
// journal entry or an out-of-range mood score.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a named input field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
