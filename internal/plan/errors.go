package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparsableType is reported when a type expression does not parse.
	ErrUnparsableType = errors.New("unparsable type expression")
	// ErrConflictingDirectives is reported when a field has both from and try_from.
	ErrConflictingDirectives = errors.New("cannot specify both `from` and `try_from`")
	// ErrDuplicateField is reported when two fields of one struct share a name.
	ErrDuplicateField = errors.New("duplicate field name")
)

// SchemaError is a schema-level failure found while extracting a field.
type SchemaError struct {
	Struct    string
	Field     string
	Directive string // "type", "from" or "try_from"
	Input     string
	Err       error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", location(e.Struct, e.Field), e.Directive, e.Input, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ValidationError is a directive combination rejected by the validator.
type ValidationError struct {
	Struct string
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", location(e.Struct, e.Field), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func location(structName, field string) string {
	switch {
	case structName == "":
		return "field " + field
	case field == "":
		return structName
	default:
		return structName + "." + field
	}
}
