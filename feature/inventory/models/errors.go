package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a product, supplier or alert does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected create or update payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
