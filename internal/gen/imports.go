package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"sort"

	"rowmap-generator/internal/common"
	"rowmap-generator/internal/plan"
)

// importSpec is one import line of a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// collectImports resolves the packages referenced by the emitted type
// expressions against the imports of the struct's own file, and adds the
// runtime package.
func collectImports(m *plan.GeneratedMapper) ([]importSpec, error) {
	byName := make(map[string]plan.Import, len(m.Struct.Imports))

	for _, imp := range m.Struct.Imports {
		name := imp.Name
		if name == "" {
			name = common.PkgAlias(imp.Path)
		}

		if name == "_" || name == "." {
			continue
		}

		byName[name] = imp
	}

	var refs []string

	for _, f := range m.Fields {
		refs = append(refs, f.Spec.DeclaredType.PackageRefs()...)
		if !f.Spec.Source.Type.IsZero() {
			refs = append(refs, f.Spec.Source.Type.PackageRefs()...)
		}
	}

	for _, tp := range m.Struct.TypeParams {
		r, err := exprPackageRefs(tp.Constraint)
		if err != nil {
			return nil, fmt.Errorf("type parameter %s: %w", tp.Name, err)
		}

		refs = append(refs, r...)
	}

	seen := map[string]bool{plan.RuntimePkgPath + " ": true}
	out := []importSpec{{Path: plan.RuntimePkgPath}}

	for _, ref := range refs {
		imp, ok := byName[ref]
		if !ok {
			// Not an import of the struct's file; left for the compiler to report.
			continue
		}

		spec := importSpec{Alias: imp.Name, Path: imp.Path}

		key := spec.Path + " " + spec.Alias
		if seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}

		return out[i].Alias < out[j].Alias
	})

	return out, nil
}

// exprPackageRefs lists package qualifiers used in an expression such as a
// type parameter constraint ("~int | fmt.Stringer").
func exprPackageRefs(src string) ([]string, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, err
	}

	var refs []string

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			refs = append(refs, id.Name)
		}

		return false
	})

	return refs, nil
}
