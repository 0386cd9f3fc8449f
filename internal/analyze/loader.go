package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"rowmap-generator/internal/plan"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and extracts their structs.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDir sets the directory package patterns are resolved against.
func WithDir(dir string) Option {
	return func(l *Loader) {
		l.dir = dir
	}
}

// WithLogger sets the logger used for skipped declarations.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads the packages matching patterns (e.g. "./models",
// "rowmap-generator/examples/accounts").
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     l.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		generated := generatedFiles(pkg)

		for _, e := range pkg.Errors {
			// Stale generated mappers must not block their own regeneration.
			if e.Kind == packages.TypeError && generated[errorFile(e)] {
				l.logger.Warn("ignoring error in generated file",
					slog.String("package", pkg.PkgPath),
					slog.String("error", e.Error()))

				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	out := make([]*Package, 0, len(pkgs))

	for _, pkg := range pkgs {
		p, err := l.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		out = append(out, p)
	}

	return out, nil
}

func (l *Loader) processPackage(pkg *packages.Package) (*Package, error) {
	p := &Package{
		Name:  pkg.Name,
		Path:  pkg.PkgPath,
		Fset:  pkg.Fset,
		Types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}

		structs, err := l.processFile(pkg, file)
		if err != nil {
			return nil, err
		}

		p.Structs = append(p.Structs, structs...)
	}

	return p, nil
}

func generatedFiles(pkg *packages.Package) map[string]bool {
	out := map[string]bool{}

	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			out[pkg.Fset.File(file.Pos()).Name()] = true
		}
	}

	return out
}

// errorFile strips ":line:col" from an error position.
func errorFile(e packages.Error) string {
	pos := e.Pos
	for range 2 {
		if i := strings.LastIndexByte(pos, ':'); i >= 0 {
			pos = pos[:i]
		}
	}

	return pos
}

func (l *Loader) processFile(pkg *packages.Package, file *ast.File) ([]plan.RawStruct, error) {
	build := buildConstraint(file)
	imports := fileImports(file)

	var out []plan.RawStruct

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			if ts.Assign.IsValid() {
				continue
			}

			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			s := plan.RawStruct{
				Name:            ts.Name.Name,
				PkgName:         pkg.Name,
				PkgPath:         pkg.PkgPath,
				TypeParams:      typeParams(ts.TypeParams),
				Doc:             commentLines(doc),
				BuildConstraint: build,
				Imports:         imports,
				Pos:             ts.Name.Pos(),
			}

			fields, err := l.structFields(s.Name, st)
			if err != nil {
				return nil, err
			}

			s.Fields = fields
			out = append(out, s)
		}
	}

	return out, nil
}

func (l *Loader) structFields(structName string, st *ast.StructType) ([]plan.RawField, error) {
	var out []plan.RawField

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			l.logger.Debug("skipping embedded field",
				slog.String("struct", structName),
				slog.String("type", types.ExprString(field.Type)))

			continue
		}

		tag := ""
		if field.Tag != nil {
			unquoted, err := strconv.Unquote(field.Tag.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: field tag %s: %w", structName, field.Tag.Value, err)
			}

			tag = unquoted
		}

		directives, err := ParseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", structName, field.Names[0].Name, err)
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				l.logger.Debug("skipping blank field",
					slog.String("struct", structName),
					slog.String("type", types.ExprString(field.Type)))

				continue
			}

			f := plan.RawField{
				Name: name.Name,
				Type: types.ExprString(field.Type),
				Doc:  commentLines(field.Doc),
				Tag:  tag,
				Pos:  name.Pos(),
			}
			directives.Apply(&f)
			out = append(out, f)
		}
	}

	return out, nil
}

func typeParams(list *ast.FieldList) []plan.TypeParam {
	if list == nil {
		return nil
	}

	var out []plan.TypeParam

	for _, field := range list.List {
		c := types.ExprString(field.Type)
		for _, name := range field.Names {
			out = append(out, plan.TypeParam{Name: name.Name, Constraint: c})
		}
	}

	return out
}

func fileImports(file *ast.File) []plan.Import {
	out := make([]plan.Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := plan.Import{Path: path}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		out = append(out, imp)
	}

	return out
}

// buildConstraint returns the //go:build expression of file, if any.
func buildConstraint(file *ast.File) string {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}

		for _, c := range group.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}

			expr, err := constraint.Parse(c.Text)
			if err != nil {
				continue
			}

			return expr.String()
		}
	}

	return ""
}

func commentLines(group *ast.CommentGroup) []string {
	if group == nil {
		return nil
	}

	text := strings.TrimRight(group.Text(), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
