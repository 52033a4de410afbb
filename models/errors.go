package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the target record does not exist in its
// collection. An invalid id is treated the same way: no such record.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a payload that fails a required-field or
// enum-membership rule. It never reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// BackendError wraps a persistence failure that is independent of the
// caller's payload. Unavailable is set when the store is known to be
// down (circuit breaker open), so callers can fail fast.
type BackendError struct {
	Unavailable bool
	Err         error
}

func (e *BackendError) Error() string {
	if e.Unavailable {
		return fmt.Sprintf("persistence backend unavailable: %v", e.Err)
	}
	return fmt.Sprintf("persistence backend error: %v", e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
