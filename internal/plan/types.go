package plan

import (
	"go/ast"
	"go/token"
	"slices"
)

// RuntimePkgPath is the import path of the runtime support package used by generated code.
const RuntimePkgPath = "rowmap-generator/rowmap"

// RuntimePkgName is the package name generated code uses to reach the runtime.
const RuntimePkgName = "rowmap"

// OptionName is the bare type name recognised as the optional wrapper.
const OptionName = "Option"

// RawField is one struct field as delivered by the front end.
type RawField struct {
	// Name is the Go field name.
	Name string
	// Type is the declared Go type expression (e.g. "int32", "Option[string]").
	Type string
	// From is the `from` directive, if present.
	From *string
	// TryFrom is the `try_from` directive, if present.
	TryFrom *string
	// Rename is the `rename` directive, if present.
	Rename *string
	// Doc and Tag are passed through untouched.
	Doc []string
	Tag string
	// Pos locates the field for diagnostics.
	Pos token.Pos
}

// TypeParam is one type parameter of a generic struct, with its declared constraint.
type TypeParam struct {
	Name       string
	Constraint string
}

// Import is an import spec of the file declaring a struct.
type Import struct {
	Name string // explicit import name, empty when the default is used
	Path string
}

// RawStruct is the structural schema of one target struct.
type RawStruct struct {
	Name    string
	PkgName string
	PkgPath string
	// TypeParams lists the struct's own type parameters and constraints.
	TypeParams []TypeParam
	Fields     []RawField
	// Doc, BuildConstraint and Imports are echoed into generated output.
	Doc             []string
	BuildConstraint string
	Imports         []Import
	// EmitDefinition asks the generator to write the struct type itself,
	// as done for the output of WrapOptional.
	EmitDefinition bool
	Pos            token.Pos
}

// Clone returns a deep copy of s.
func (s RawStruct) Clone() RawStruct {
	out := s
	out.TypeParams = slices.Clone(s.TypeParams)
	out.Doc = slices.Clone(s.Doc)
	out.Imports = slices.Clone(s.Imports)
	out.Fields = make([]RawField, len(s.Fields))

	for i, f := range s.Fields {
		f.Doc = slices.Clone(f.Doc)
		f.From = clonePtr(f.From)
		f.TryFrom = clonePtr(f.TryFrom)
		f.Rename = clonePtr(f.Rename)
		out.Fields[i] = f
	}

	if s.Fields == nil {
		out.Fields = nil
	}

	return out
}

// Exported reports whether the struct name is exported.
func (s RawStruct) Exported() bool {
	return ast.IsExported(s.Name)
}

// SourceKind says how a column value becomes the declared field type.
//
//go:generate go tool stringer -type=SourceKind -trimprefix=Source -output=sourcekind_string.go
type SourceKind int

const (
	// SourceDirect decodes the declared type straight from the column.
	SourceDirect SourceKind = iota
	// SourceConvertFrom decodes the source type and converts with T(v).
	SourceConvertFrom
	// SourceConvertTryFrom decodes the source type and converts with (*T).Scan.
	SourceConvertTryFrom
)

// SourceMode is a SourceKind with the directive's source type, if any.
type SourceMode struct {
	Kind SourceKind
	Type TypeExpr // zero for SourceDirect
}

// FieldSpec is the resolved mapping configuration of one field.
type FieldSpec struct {
	Name         string
	DeclaredType TypeExpr
	Source       SourceMode
	ColumnName   string
	// IsOptionalWrapper is true when DeclaredType is written as Option[...].
	IsOptionalWrapper bool
	// From and TryFrom keep the parsed directives for validation.
	From    *TypeExpr
	TryFrom *TypeExpr
	Doc     []string
	Tag     string
}

// EffectiveSourceType is the type decoded from the column.
func (f FieldSpec) EffectiveSourceType() TypeExpr {
	if f.Source.Kind == SourceDirect {
		return f.DeclaredType
	}

	return f.Source.Type
}

// StructureSpec is a whole target struct after extraction and validation.
type StructureSpec struct {
	Raw    RawStruct
	Fields []FieldSpec
}

// FieldMapping pairs a field with its two decoding expressions.
type FieldMapping struct {
	Field    string
	Column   string
	Total    FieldExpr
	Fallible FieldExpr
	Spec     FieldSpec
}

// GeneratedMapper is the compiler output for one struct.
type GeneratedMapper struct {
	// Struct is the schema the mapper was compiled from (metadata echo).
	Struct RawStruct
	// TypeExpr is the struct type as used in signatures, e.g. "Page[T]".
	TypeExpr string
	// FromRowFunc and TryFromRowFunc are the names of the two emitted functions.
	FromRowFunc    string
	TryFromRowFunc string
	// Constraints holds the struct's declared constraints followed by the synthesized ones.
	Constraints *ConstraintSet
	Fields      []FieldMapping
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
