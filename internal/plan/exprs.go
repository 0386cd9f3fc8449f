package plan

import (
	"fmt"
	"strconv"
)

// FieldExpr is the decoding logic of one field, rendered by the generator as
//
//	if v, err := <Decode>; err == nil {
//		out.<Field> = <Value>
//	} else {
//		out.<Field> = <Fallback>
//	}
type FieldExpr struct {
	// Decode yields (value, error); the error covers absence, decoding and conversion.
	Decode string
	// Value converts the decoded v to the declared type.
	Value string
	// Fallback is the empty optional or the declared type's default.
	Fallback string
}

// Exprs returns the expressions used by FromRow (total) and TryFromRow (fallible).
// Both absorb every failure into the fallback, so they are currently identical.
func Exprs(f FieldSpec) (total, fallible FieldExpr) {
	return Total(f), Fallible(f)
}

// Total builds the expression of the always-succeeding procedure.
func Total(f FieldSpec) FieldExpr {
	return FieldExpr{
		Decode:   decodeExpr(f),
		Value:    valueExpr(f),
		Fallback: fallbackExpr(f),
	}
}

// Fallible builds the expression of the fallible procedure. Column absence and
// field-level failures are recoverable here too and never reach the caller.
func Fallible(f FieldSpec) FieldExpr {
	return Total(f)
}

func decodeExpr(f FieldSpec) string {
	column := strconv.Quote(f.ColumnName)

	switch f.Source.Kind {
	case SourceConvertTryFrom:
		return fmt.Sprintf("%s.TryGet[%s, %s](row, %s)", RuntimePkgName, f.Source.Type, f.DeclaredType, column)
	case SourceConvertFrom:
		return fmt.Sprintf("%s.Get[%s](row, %s)", RuntimePkgName, f.Source.Type, column)
	default:
		return fmt.Sprintf("%s.Get[%s](row, %s)", RuntimePkgName, f.DeclaredType, column)
	}
}

func valueExpr(f FieldSpec) string {
	if f.Source.Kind == SourceConvertFrom {
		return f.DeclaredType.ConversionOf("v")
	}

	return "v"
}

func fallbackExpr(f FieldSpec) string {
	if f.IsOptionalWrapper {
		return f.DeclaredType.ZeroLiteral()
	}

	return fmt.Sprintf("%s.Default[%s]()", RuntimePkgName, f.DeclaredType)
}
