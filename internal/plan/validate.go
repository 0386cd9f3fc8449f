package plan

// Validate enforces the directive rules of one field.
func Validate(f FieldSpec) error {
	if f.From != nil && f.TryFrom != nil {
		return &ValidationError{Field: f.Name, Err: ErrConflictingDirectives}
	}

	return nil
}

// ValidateRaw applies the same rules to a field whose directives have not been
// parsed yet, so a conflict is reported even when a directive is malformed.
func ValidateRaw(f RawField) error {
	if f.From != nil && f.TryFrom != nil {
		return &ValidationError{Field: f.Name, Err: ErrConflictingDirectives}
	}

	return nil
}
