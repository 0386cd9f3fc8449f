package plan

import (
	"fmt"
	"go/ast"
	"unicode"
	"unicode/utf8"
)

// WrapOptional rewrites every field whose declared type is not already an
// optional wrapper into Option[<type>]. Directives are not consulted. With
// enabled false s is returned as is (copied). Applying it twice is the same
// as applying it once.
func WrapOptional(s RawStruct, enabled bool) RawStruct {
	out := s.Clone()
	if !enabled {
		return out
	}

	for i := range out.Fields {
		t, err := ParseTypeExpr(out.Fields[i].Type)
		if err != nil {
			// Left for ExtractField to report.
			continue
		}

		if t.IsOptionalWrapper() {
			continue
		}

		out.Fields[i].Type = OptionName + "[" + t.String() + "]"
	}

	return out
}

// WrappedName is the default name of the wrapped copy of a struct:
// "Optional<Name>", or "optional<Name>" when name is unexported.
func WrappedName(name string) string {
	if name == "" {
		return ""
	}

	if ast.IsExported(name) {
		return "Optional" + name
	}

	r, size := utf8.DecodeRuneInString(name)

	return "optional" + string(unicode.ToUpper(r)) + name[size:]
}

// Wrapped returns WrapOptional(s, true) as a new struct type named name
// (WrappedName(s.Name) when empty) that the generator emits alongside its
// mapper functions.
func Wrapped(s RawStruct, name string) RawStruct {
	if name == "" {
		name = WrappedName(s.Name)
	}

	out := WrapOptional(s, true)
	out.Name = name
	out.EmitDefinition = true
	out.Doc = []string{fmt.Sprintf("%s is %s with every field optional.", name, s.Name)}

	return out
}
