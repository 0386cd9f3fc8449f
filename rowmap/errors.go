package rowmap

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is reported when a row has no column with the requested name.
var ErrColumnNotFound = errors.New("column not found")

// MapperError is the error type of generated mappers.
// Generated TryFromRow functions absorb it today; it is surfaced by Get and TryGet.
type MapperError struct {
	Column string
	Err    error
}

func (e *MapperError) Error() string {
	return fmt.Sprintf("rowmap: column %q: %v", e.Column, e.Err)
}

func (e *MapperError) Unwrap() error {
	return e.Err
}

// ConversionError wraps the failure of a fallible conversion from Source to Target.
type ConversionError struct {
	Source string
	Target string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s to %s: %v", e.Source, e.Target, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
