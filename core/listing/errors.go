package listing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned for field keys outside the known set.
	ErrUnknownField = errors.New("unknown field")
	// ErrFieldNotSupported is returned when a record does not carry the field.
	ErrFieldNotSupported = errors.New("field not supported by record")
	// ErrMissingReference is returned when a field lives on a related entity that is not set.
	ErrMissingReference = errors.New("missing reference")
	// ErrKindMismatch is returned when a record reports a value of the wrong kind.
	ErrKindMismatch = errors.New("value kind does not match field")
	// ErrInvalidTarget is returned when a search target cannot be read for the field.
	ErrInvalidTarget = errors.New("invalid search target")
)

// FieldError describes a failure to resolve a field.
type FieldError struct {
	Field  Field
	Key    string
	Record string
	Err    error
}

func (e *FieldError) Error() string {
	name := e.Field.String()
	if e.Field == 0 {
		name = e.Key
	}
	msg := fmt.Sprintf("field %q: %v", name, e.Err)
	if e.Record != "" {
		msg = fmt.Sprintf("%s: %s", e.Record, msg)
	}
	if e.Field != 0 && e.Key != "" {
		msg = fmt.Sprintf("%s (%q)", msg, e.Key)
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// MissingReference builds the error a record returns when a related entity is not set.
func MissingReference(f Field, record string) error {
	return &FieldError{Field: f, Record: record, Err: ErrMissingReference}
}

// NotSupported builds the error a record returns for a field it does not carry.
func NotSupported(f Field, record string) error {
	return &FieldError{Field: f, Record: record, Err: ErrFieldNotSupported}
}
