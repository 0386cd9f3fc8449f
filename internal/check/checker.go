package check

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"slices"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/diagnostic"
	"rowmap-generator/internal/match"
	"rowmap-generator/internal/plan"
)

const maxSuggestions = 3

// Checker verifies mapper constraints against a loaded package.
type Checker struct {
	decodable []string
	logger    *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithDecodable declares extra type expressions (e.g. "decimal.Decimal")
// as decodable, typically because a rowmap.Registry decoder handles them.
func WithDecodable(exprs ...string) Option {
	return func(c *Checker) {
		c.decodable = append(c.decodable, exprs...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check resolves the constraints of every field of m within pkg.
func (c *Checker) Check(pkg *analyze.Package, m *plan.GeneratedMapper) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	r := &resolver{pkg: pkg, structName: m.Struct.Name, pos: m.Struct.Pos}

	if usesOption(m) && !r.optionInScope() {
		diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeOptionNotInScope,
			Message: fmt.Sprintf("%s is used but not declared in package %s; add `type %s[T any] = %s.%s[T]`",
				plan.OptionName, pkg.Name, plan.OptionName, plan.RuntimePkgName, plan.OptionName),
			Struct:   m.Struct.Name,
			Position: r.position(m.Struct.Pos),
		})

		return diags
	}

	extras := c.extraDecodable(r, &diags)

	for i, f := range m.Fields {
		pos := m.Struct.Pos
		if i < len(m.Struct.Fields) && m.Struct.Fields[i].Pos.IsValid() {
			pos = m.Struct.Fields[i].Pos
		}

		set := &plan.ConstraintSet{}
		plan.Synthesize(f.Spec, set)

		fr := &fieldCheck{resolver: r, field: f.Field, pos: pos, diags: &diags, extras: extras}
		for _, con := range set.Unique() {
			fr.check(con)
		}
	}

	c.logger.Debug("checked mapper",
		slog.String("struct", m.Struct.Name),
		slog.Int("errors", len(diags.Errors)),
		slog.Int("warnings", len(diags.Warnings)))

	return diags
}

func (c *Checker) extraDecodable(r *resolver, diags *diagnostic.Diagnostics) []types.Type {
	var out []types.Type

	for _, expr := range c.decodable {
		t, err := r.eval(expr, r.pos)
		if err != nil {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeUnknownType,
				Message:     fmt.Sprintf("configured decodable type %s: %v", expr, err),
				Struct:      r.structName,
				Suggestions: r.suggest(expr, r.pos),
			})

			continue
		}

		out = append(out, t)
	}

	return out
}

type fieldCheck struct {
	*resolver
	field  string
	pos    token.Pos
	diags  *diagnostic.Diagnostics
	extras []types.Type
	failed map[string]bool
}

func (f *fieldCheck) check(c plan.Constraint) {
	switch c.Kind {
	case plan.ConstraintDecodable:
		t, ok := f.resolve(c.Subject)
		if !ok {
			return
		}

		if !decodable(t, f.extras) {
			f.report(diagnostic.CodeNotDecodable,
				fmt.Sprintf("%s cannot be decoded from a column; implement sql.Scanner on *%s or list it under `decodable` with a registry decoder", c.Subject, c.Subject))
		}

	case plan.ConstraintConvertibleFrom:
		subject, ok1 := f.resolve(c.Subject)
		source, ok2 := f.resolve(c.Source)

		if ok1 && ok2 && !types.ConvertibleTo(source, subject) {
			f.report(diagnostic.CodeNotConvertible, fmt.Sprintf("cannot convert %s to %s", c.Source, c.Subject))
		}

	case plan.ConstraintTryConvertibleFrom:
		subject, ok := f.resolve(c.Subject)
		if !ok {
			return
		}

		if !implementsScanner(types.NewPointer(subject)) {
			f.report(diagnostic.CodeNotScanner, fmt.Sprintf("*%s does not implement sql.Scanner (Scan(src any) error)", c.Subject))
		}

	case plan.ConstraintDefaultable:
		t, ok := f.resolve(c.Subject)
		if ok && hasDefaultMethod(t) {
			f.diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticInfo,
				Code:     diagnostic.CodeDefaulter,
				Message:  fmt.Sprintf("%s provides Default(); it is used when the column is missing or invalid", c.Subject),
				Struct:   f.structName,
				Field:    f.field,
				Position: f.position(f.pos),
			})
		}

	case plan.ConstraintDeclared, plan.ConstraintErrorFrom, plan.ConstraintFormattable:
		// Satisfied by the runtime error types.
	}
}

// resolve evaluates expr once per field; failures are reported once.
func (f *fieldCheck) resolve(expr string) (types.Type, bool) {
	if f.failed[expr] {
		return nil, false
	}

	t, err := f.eval(expr, f.pos)
	if err == nil {
		return t, true
	}

	if f.failed == nil {
		f.failed = map[string]bool{}
	}

	f.failed[expr] = true

	f.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        diagnostic.CodeUnknownType,
		Message:     err.Error(),
		Struct:      f.structName,
		Field:       f.field,
		Position:    f.position(f.pos),
		Suggestions: f.suggest(expr, f.pos),
	})

	return nil, false
}

func (f *fieldCheck) report(code, msg string) {
	f.diags.Add(diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     code,
		Message:  msg,
		Struct:   f.structName,
		Field:    f.field,
		Position: f.position(f.pos),
	})
}

func usesOption(m *plan.GeneratedMapper) bool {
	return slices.ContainsFunc(m.Fields, func(f plan.FieldMapping) bool {
		return f.Spec.IsOptionalWrapper
	})
}

type resolver struct {
	pkg        *analyze.Package
	structName string
	pos        token.Pos
}

func (r *resolver) eval(expr string, pos token.Pos) (types.Type, error) {
	tv, err := types.Eval(r.pkg.Fset, r.pkg.Types, pos, expr)
	if err != nil {
		return nil, err
	}

	if !tv.IsType() {
		return nil, fmt.Errorf("%s is not a type", expr)
	}

	return tv.Type, nil
}

func (r *resolver) position(pos token.Pos) string {
	p := r.pkg.Position(pos)
	if !p.IsValid() {
		return ""
	}

	return p.String()
}

func (r *resolver) optionInScope() bool {
	scope := r.pkg.Types.Scope().Innermost(r.pos)
	if scope == nil {
		scope = r.pkg.Types.Scope()
	}

	_, obj := scope.LookupParent(plan.OptionName, r.pos)

	return obj != nil
}

// suggest proposes replacements for the names in expr that do not resolve.
func (r *resolver) suggest(expr string, pos token.Pos) []string {
	t, err := plan.ParseTypeExpr(expr)
	if err != nil {
		return nil
	}

	scope := r.pkg.Types.Scope().Innermost(pos)
	if scope == nil {
		scope = r.pkg.Types.Scope()
	}

	var out []string

	ast.Inspect(t.Expr(), func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.SelectorExpr:
			id, ok := x.X.(*ast.Ident)
			if !ok {
				return false
			}

			if imported := r.importedPackage(scope, id.Name, pos); imported != nil {
				if imported.Scope().Lookup(x.Sel.Name) == nil {
					for _, name := range match.Suggest(x.Sel.Name, exportedNames(imported), maxSuggestions) {
						out = append(out, id.Name+"."+name)
					}
				}

				return false
			}

			out = append(out, match.Suggest(id.Name, r.packageNames(scope), maxSuggestions)...)

			return false

		case *ast.Ident:
			if _, obj := scope.LookupParent(x.Name, pos); obj == nil {
				out = append(out, match.Suggest(x.Name, r.visibleNames(scope), maxSuggestions)...)
			}
		}

		return true
	})

	return out
}

func (r *resolver) importedPackage(scope *types.Scope, name string, pos token.Pos) *types.Package {
	_, obj := scope.LookupParent(name, pos)
	if pn, ok := obj.(*types.PkgName); ok {
		return pn.Imported()
	}

	return nil
}

func (r *resolver) packageNames(scope *types.Scope) []string {
	var names []string

	for s := scope; s != nil; s = s.Parent() {
		for _, name := range s.Names() {
			if _, ok := s.Lookup(name).(*types.PkgName); ok {
				names = append(names, name)
			}
		}
	}

	return names
}

func (r *resolver) visibleNames(scope *types.Scope) []string {
	var names []string

	for s := scope; s != nil; s = s.Parent() {
		for _, name := range s.Names() {
			if _, ok := s.Lookup(name).(*types.TypeName); ok {
				names = append(names, name)
			}
		}
	}

	return names
}

func exportedNames(pkg *types.Package) []string {
	var names []string

	for _, name := range pkg.Scope().Names() {
		if token.IsExported(name) {
			names = append(names, name)
		}
	}

	return names
}
