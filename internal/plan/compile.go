package plan

import "strings"

// Compile compiles s into a GeneratedMapper. The first invalid field aborts
// compilation; nothing is emitted for a struct that fails.
func Compile(s RawStruct) (*GeneratedMapper, error) {
	spec, err := ExtractStruct(s)
	if err != nil {
		return nil, err
	}

	fieldConstraints := &ConstraintSet{}
	mappings := make([]FieldMapping, 0, len(spec.Fields))

	for _, f := range spec.Fields {
		Synthesize(f, fieldConstraints)

		total, fallible := Exprs(f)
		mappings = append(mappings, FieldMapping{
			Field:    f.Name,
			Column:   f.ColumnName,
			Total:    total,
			Fallible: fallible,
			Spec:     f,
		})
	}

	constraints := DeclaredConstraints(s)
	constraints.AddAll(fieldConstraints)

	return &GeneratedMapper{
		Struct:         s,
		TypeExpr:       instantiation(s),
		FromRowFunc:    s.Name + "FromRow",
		TryFromRowFunc: s.Name + "TryFromRow",
		Constraints:    constraints,
		Fields:         mappings,
	}, nil
}

// TypeParamList renders the struct's type parameter list, e.g. "[T any]".
func (m *GeneratedMapper) TypeParamList() string {
	if len(m.Struct.TypeParams) == 0 {
		return ""
	}

	parts := make([]string, len(m.Struct.TypeParams))
	for i, tp := range m.Struct.TypeParams {
		parts[i] = tp.Name + " " + tp.Constraint
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Requirements returns the distinct synthesized constraints, without the declared ones.
func (m *GeneratedMapper) Requirements() []Constraint {
	var out []Constraint

	for _, c := range m.Constraints.Unique() {
		if c.Kind != ConstraintDeclared {
			out = append(out, c)
		}
	}

	return out
}

func instantiation(s RawStruct) string {
	if len(s.TypeParams) == 0 {
		return s.Name
	}

	names := make([]string, len(s.TypeParams))
	for i, tp := range s.TypeParams {
		names[i] = tp.Name
	}

	return s.Name + "[" + strings.Join(names, ", ") + "]"
}
