package plan

import (
	"fmt"
	"slices"
)

// ConstraintKind is a capability the generated code relies on.
//
//go:generate go tool stringer -type=ConstraintKind -trimprefix=Constraint -output=constraintkind_string.go
type ConstraintKind int

const (
	// ConstraintDeclared is a type parameter constraint written on the struct itself.
	ConstraintDeclared ConstraintKind = iota
	// ConstraintDecodable: Subject can be decoded from a column.
	ConstraintDecodable
	// ConstraintConvertibleFrom: Source converts to Subject with Subject(v).
	ConstraintConvertibleFrom
	// ConstraintTryConvertibleFrom: *Subject implements sql.Scanner and accepts Source.
	ConstraintTryConvertibleFrom
	// ConstraintErrorFrom: the mapper error wraps the Source to Subject conversion failure.
	ConstraintErrorFrom
	// ConstraintFormattable: the Source to Subject conversion failure is printable.
	ConstraintFormattable
	// ConstraintDefaultable: Subject has a default value.
	ConstraintDefaultable
)

// Constraint is a single capability requirement.
type Constraint struct {
	Kind    ConstraintKind
	Subject string
	// Source is the other type of a conversion, or the constraint text for ConstraintDeclared.
	Source string
}

func (c Constraint) String() string {
	switch c.Kind {
	case ConstraintDeclared:
		return c.Subject + " " + c.Source
	case ConstraintDecodable:
		return c.Subject + " is decodable from a column"
	case ConstraintConvertibleFrom:
		return fmt.Sprintf("%s converts to %s", c.Source, c.Subject)
	case ConstraintTryConvertibleFrom:
		return fmt.Sprintf("*%s scans %s (sql.Scanner)", c.Subject, c.Source)
	case ConstraintErrorFrom:
		return fmt.Sprintf("%s.MapperError wraps %s to %s conversion failures", RuntimePkgName, c.Source, c.Subject)
	case ConstraintFormattable:
		return fmt.Sprintf("%s to %s conversion failures are printable", c.Source, c.Subject)
	case ConstraintDefaultable:
		return c.Subject + " has a default value"
	default:
		return fmt.Sprintf("%s(%s, %s)", c.Kind, c.Subject, c.Source)
	}
}

// ConstraintSet accumulates constraints. Membership and equality ignore
// order and duplicates; duplicates are kept as added.
type ConstraintSet struct {
	items []Constraint
}

// NewConstraintSet creates a set holding cs.
func NewConstraintSet(cs ...Constraint) *ConstraintSet {
	s := &ConstraintSet{}
	for _, c := range cs {
		s.Add(c)
	}

	return s
}

// Add appends c.
func (s *ConstraintSet) Add(c Constraint) {
	s.items = append(s.items, c)
}

// AddAll appends every constraint of other.
func (s *ConstraintSet) AddAll(other *ConstraintSet) {
	if other == nil {
		return
	}

	s.items = append(s.items, other.items...)
}

// Len counts constraints including duplicates.
func (s *ConstraintSet) Len() int {
	return len(s.items)
}

// Contains reports whether c was added.
func (s *ConstraintSet) Contains(c Constraint) bool {
	return slices.Contains(s.items, c)
}

// Items returns all constraints in insertion order.
func (s *ConstraintSet) Items() []Constraint {
	return slices.Clone(s.items)
}

// Unique returns the distinct constraints, in order of first insertion.
func (s *ConstraintSet) Unique() []Constraint {
	seen := make(map[Constraint]struct{}, len(s.items))

	var out []Constraint

	for _, c := range s.items {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// Equal reports set equality.
func (s *ConstraintSet) Equal(other *ConstraintSet) bool {
	a, b := s.Unique(), other.Unique()
	if len(a) != len(b) {
		return false
	}

	for _, c := range a {
		if !other.Contains(c) {
			return false
		}
	}

	return true
}

// Synthesize adds the constraints f imposes on generated code to set.
func Synthesize(f FieldSpec, set *ConstraintSet) {
	declared := f.DeclaredType.String()

	set.Add(Constraint{Kind: ConstraintDecodable, Subject: f.EffectiveSourceType().String()})

	switch f.Source.Kind {
	case SourceConvertFrom:
		set.Add(Constraint{Kind: ConstraintConvertibleFrom, Subject: declared, Source: f.Source.Type.String()})

	case SourceConvertTryFrom:
		src := f.Source.Type.String()
		set.Add(Constraint{Kind: ConstraintTryConvertibleFrom, Subject: declared, Source: src})
		set.Add(Constraint{Kind: ConstraintErrorFrom, Subject: declared, Source: src})
		set.Add(Constraint{Kind: ConstraintFormattable, Subject: declared, Source: src})

	case SourceDirect:
	}

	if !f.IsOptionalWrapper {
		set.Add(Constraint{Kind: ConstraintDefaultable, Subject: declared})
	}
}

// DeclaredConstraints returns the struct's own type parameter constraints.
func DeclaredConstraints(s RawStruct) *ConstraintSet {
	set := &ConstraintSet{}
	for _, tp := range s.TypeParams {
		set.Add(Constraint{Kind: ConstraintDeclared, Subject: tp.Name, Source: tp.Constraint})
	}

	return set
}
