package plan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
)

// TypeExpr is a parsed Go type expression.
type TypeExpr struct {
	text string
	expr ast.Expr
}

// ParseTypeExpr parses s as a Go type expression.
// Values that parse as expressions but cannot denote a type (literals, calls,
// operators) are rejected.
func ParseTypeExpr(s string) (TypeExpr, error) {
	expr, err := parser.ParseExpr(s)
	if err != nil {
		return TypeExpr{}, err
	}

	if !isTypeExpr(expr) {
		return TypeExpr{}, fmt.Errorf("%q is not a type expression", s)
	}

	return TypeExpr{text: types.ExprString(expr), expr: expr}, nil
}

// MustParseTypeExpr is ParseTypeExpr for known-good input.
func MustParseTypeExpr(s string) TypeExpr {
	t, err := ParseTypeExpr(s)
	if err != nil {
		panic(err)
	}

	return t
}

// String returns the canonical source form.
func (t TypeExpr) String() string {
	return t.text
}

// Expr returns the syntax tree.
func (t TypeExpr) Expr() ast.Expr {
	return t.expr
}

// IsZero reports whether t holds no expression.
func (t TypeExpr) IsZero() bool {
	return t.expr == nil
}

// IsOptionalWrapper reports whether the outermost constructor is the bare
// identifier Option. Qualified names (pkg.Option[T]) do not count, and any
// local type named Option does.
func (t TypeExpr) IsOptionalWrapper() bool {
	return isOptionalWrapper(t.expr)
}

// ConversionOf renders the Go conversion of operand to t, parenthesising t
// where the grammar requires it (pointer, func and channel types).
func (t TypeExpr) ConversionOf(operand string) string {
	switch unparen(t.expr).(type) {
	case *ast.StarExpr, *ast.FuncType, *ast.ChanType:
		return "(" + t.text + ")(" + operand + ")"
	default:
		return t.text + "(" + operand + ")"
	}
}

// ZeroLiteral renders the empty composite literal of t. A composite literal
// type cannot be parenthesised, so enclosing parentheses are dropped.
func (t TypeExpr) ZeroLiteral() string {
	return types.ExprString(unparen(t.expr)) + "{}"
}

// PackageRefs returns the package names referenced through selectors, in order of appearance.
func (t TypeExpr) PackageRefs() []string {
	var refs []string

	seen := map[string]bool{}

	ast.Inspect(t.expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			refs = append(refs, id.Name)
		}

		return false
	})

	return refs
}

func isOptionalWrapper(e ast.Expr) bool {
	switch x := unparen(e).(type) {
	case *ast.IndexExpr:
		return isOptionIdent(x.X)
	case *ast.IndexListExpr:
		return isOptionIdent(x.X)
	default:
		return false
	}
}

func isOptionIdent(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == OptionName
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}

		e = p.X
	}
}

func isTypeExpr(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := x.X.(*ast.Ident)
		return ok
	case *ast.ParenExpr:
		return isTypeExpr(x.X)
	case *ast.StarExpr:
		return isTypeExpr(x.X)
	case *ast.ArrayType:
		return isTypeExpr(x.Elt)
	case *ast.MapType:
		return isTypeExpr(x.Key) && isTypeExpr(x.Value)
	case *ast.ChanType:
		return isTypeExpr(x.Value)
	case *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.IndexExpr:
		return isTypeExpr(x.X) && isTypeExpr(x.Index)
	case *ast.IndexListExpr:
		if !isTypeExpr(x.X) {
			return false
		}

		for _, idx := range x.Indices {
			if !isTypeExpr(idx) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
