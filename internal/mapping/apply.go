package mapping

import (
	"errors"
	"fmt"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/plan"
)

// ErrUnknownField is returned when an override names a field the struct lacks.
var ErrUnknownField = errors.New("unknown field")

// ErrUnknownTarget is returned when no loaded package declares the target struct.
var ErrUnknownTarget = errors.New("unknown target type")

// Apply returns s with the target's field overrides applied.
func (t Target) Apply(s plan.RawStruct) (plan.RawStruct, error) {
	out := s.Clone()

	for _, o := range t.Fields {
		i := fieldIndex(out, o.Name)
		if i < 0 {
			return plan.RawStruct{}, fmt.Errorf("%s.%s: %w", s.Name, o.Name, ErrUnknownField)
		}

		o.Directives().Apply(&out.Fields[i])
	}

	return out, nil
}

// Directives converts the override to tag directives.
func (o FieldOverride) Directives() analyze.Directives {
	return analyze.Directives{Rename: o.Rename, From: o.From, TryFrom: o.TryFrom}
}

// Schema returns the struct to compile for t: the overridden struct, or its
// wrapped copy when WrapOptional is set.
func (t Target) Schema(s plan.RawStruct) (plan.RawStruct, error) {
	out, err := t.Apply(s)
	if err != nil {
		return plan.RawStruct{}, err
	}

	if t.WrapOptional {
		out = plan.Wrapped(out, t.WrappedName)
	}

	return out, nil
}

// Resolve finds the package and struct t refers to.
func (t Target) Resolve(pkgs []*analyze.Package) (*analyze.Package, plan.RawStruct, error) {
	for _, pkg := range pkgs {
		if t.Package != "" && t.Package != pkg.Path && t.Package != pkg.Name {
			continue
		}

		if s, ok := pkg.Lookup(t.Type); ok {
			return pkg, s, nil
		}
	}

	return nil, plan.RawStruct{}, fmt.Errorf("%s: %w", t.Type, ErrUnknownTarget)
}

func fieldIndex(s plan.RawStruct, name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}

	return -1
}
