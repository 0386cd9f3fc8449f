package plan

import (
	"errors"
	"fmt"
)

// ExtractField turns one raw field into a FieldSpec.
// Both directives are kept when present; rejecting the combination is Validate's job.
func ExtractField(f RawField) (FieldSpec, error) {
	declared, err := parseDirective(f.Name, "type", f.Type)
	if err != nil {
		return FieldSpec{}, err
	}

	spec := FieldSpec{
		Name:              f.Name,
		DeclaredType:      declared,
		Source:            SourceMode{Kind: SourceDirect},
		ColumnName:        f.Name,
		IsOptionalWrapper: declared.IsOptionalWrapper(),
		Doc:               f.Doc,
		Tag:               f.Tag,
	}

	if f.Rename != nil {
		spec.ColumnName = *f.Rename
	}

	if f.TryFrom != nil {
		t, err := parseDirective(f.Name, "try_from", *f.TryFrom)
		if err != nil {
			return FieldSpec{}, err
		}

		spec.TryFrom = &t
		spec.Source = SourceMode{Kind: SourceConvertTryFrom, Type: t}
	}

	// from takes precedence in the mode so a conflicting spec is still well formed.
	if f.From != nil {
		t, err := parseDirective(f.Name, "from", *f.From)
		if err != nil {
			return FieldSpec{}, err
		}

		spec.From = &t
		spec.Source = SourceMode{Kind: SourceConvertFrom, Type: t}
	}

	return spec, nil
}

// ExtractStruct checks the directives of every field of s before parsing any
// of them, then extracts the fields in declaration order. Blank fields are not
// mapped. The first error encountered is returned.
func ExtractStruct(s RawStruct) (*StructureSpec, error) {
	seen := make(map[string]struct{}, len(s.Fields))

	for _, raw := range s.Fields {
		if raw.Name == "_" {
			continue
		}

		if _, dup := seen[raw.Name]; dup {
			return nil, &ValidationError{Struct: s.Name, Field: raw.Name, Err: ErrDuplicateField}
		}

		seen[raw.Name] = struct{}{}

		if err := ValidateRaw(raw); err != nil {
			return nil, withStruct(err, s.Name)
		}
	}

	out := &StructureSpec{Raw: s, Fields: make([]FieldSpec, 0, len(s.Fields))}

	for _, raw := range s.Fields {
		if raw.Name == "_" {
			continue
		}

		spec, err := ExtractField(raw)
		if err != nil {
			return nil, withStruct(err, s.Name)
		}

		if err := Validate(spec); err != nil {
			return nil, withStruct(err, s.Name)
		}

		out.Fields = append(out.Fields, spec)
	}

	return out, nil
}

func parseDirective(field, directive, input string) (TypeExpr, error) {
	t, err := ParseTypeExpr(input)
	if err != nil {
		return TypeExpr{}, &SchemaError{
			Field:     field,
			Directive: directive,
			Input:     input,
			Err:       fmt.Errorf("%w: %v", ErrUnparsableType, err),
		}
	}

	return t, nil
}

func withStruct(err error, name string) error {
	var se *SchemaError
	if errors.As(err, &se) {
		se.Struct = name
		return se
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Struct = name
		return ve
	}

	return err
}
