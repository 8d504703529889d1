package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by errors.Is for any missing-record
// condition.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that a named resource does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError reports rejected input. Field names the offending JSON
// field when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportFormatError reports a backup document that could not be accepted.
type ImportFormatError struct {
	Message string
}

func (e *ImportFormatError) Error() string {
	return e.Message
}
