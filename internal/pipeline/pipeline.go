// Package pipeline runs the generator end to end: load packages, validate
// the mapping, compile and check every target, render and write the files.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/check"
	"rowmap-generator/internal/diagnostic"
	"rowmap-generator/internal/gen"
	"rowmap-generator/internal/mapping"
	"rowmap-generator/internal/plan"
)

// ErrInvalidMapping is returned when validation or checking reports errors.
// The diagnostics are in the Result.
var ErrInvalidMapping = errors.New("mapping has errors")

// Options configures a run.
type Options struct {
	// Dir is the directory package patterns and a relative mapping Output
	// are resolved against. Empty means the working directory.
	Dir string
	// Output overrides every other output directory.
	Output string
	// DryRun renders files without writing them.
	DryRun bool
	Logger *slog.Logger
}

// Compiled is one checked mapper and the package declaring its struct.
type Compiled struct {
	Package *analyze.Package
	Mapper  *plan.GeneratedMapper
}

// Output is a rendered file and the directory it belongs in.
type Output struct {
	Dir  string
	File gen.GeneratedFile
}

// Path is the full path of the file.
func (o Output) Path() string {
	return filepath.Join(o.Dir, o.File.Filename)
}

// Result collects what a run produced.
type Result struct {
	Diagnostics diagnostic.Diagnostics
	Mappers     []Compiled
	Files       []Output
}

// Check loads the packages, validates mf and compiles and checks every
// target without rendering anything.
func Check(ctx context.Context, mf *mapping.MappingFile, opts Options) (*Result, error) {
	logger := opts.logger()
	res := &Result{}

	loader := analyze.NewLoader(analyze.WithDir(opts.Dir), analyze.WithLogger(logger))

	pkgs, err := loader.Load(ctx, mf.Packages...)
	if err != nil {
		return res, err
	}

	logger.Debug("loaded packages", slog.Int("count", len(pkgs)))

	res.Diagnostics.Merge(*mapping.Validate(mf, pkgs))
	if res.Diagnostics.HasErrors() {
		return res, ErrInvalidMapping
	}

	checker := check.New(check.WithDecodable(mf.Decodable...), check.WithLogger(logger))

	for _, t := range mf.Targets {
		c, diags := compileTarget(t, pkgs, checker)
		res.Diagnostics.Merge(diags)

		if c != nil {
			res.Mappers = append(res.Mappers, *c)
		}
	}

	if res.Diagnostics.HasErrors() {
		return res, ErrInvalidMapping
	}

	return res, nil
}

func compileTarget(t mapping.Target, pkgs []*analyze.Package, checker *check.Checker) (*Compiled, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	pkg, s, err := t.Resolve(pkgs)
	if err != nil {
		diags.AddError(diagnostic.CodeUnknownTarget, err.Error(), t.Type, "")
		return nil, diags
	}

	schema, err := t.Schema(s)
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidDirective, err.Error(), s.Name, "")
		return nil, diags
	}

	m, err := plan.Compile(schema)
	if err != nil {
		diags.Add(mapping.DirectiveDiagnostic(err, schema.Name))
		return nil, diags
	}

	diags.Merge(checker.Check(pkg, m))

	return &Compiled{Package: pkg, Mapper: m}, diags
}

// Run checks mf and renders one file per target. Unless DryRun is set the
// files are written, each to the directory chosen by outputDir.
func Run(ctx context.Context, mf *mapping.MappingFile, opts Options) (*Result, error) {
	res, err := Check(ctx, mf, opts)
	if err != nil {
		return res, err
	}

	logger := opts.logger()

	byDir := map[string][]*plan.GeneratedMapper{}

	var dirs []string

	for _, c := range res.Mappers {
		dir := opts.outputDir(mf, c.Package)
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}

		byDir[dir] = append(byDir[dir], c.Mapper)
	}

	for _, dir := range dirs {
		cfg := gen.DefaultGeneratorConfig()
		cfg.OutputDir = dir

		files, err := gen.NewGenerator(cfg, gen.WithLogger(logger)).Generate(byDir[dir])
		if err != nil {
			return res, fmt.Errorf("generating into %s: %w", dir, err)
		}

		for _, f := range files {
			res.Files = append(res.Files, Output{Dir: dir, File: f})
		}

		if opts.DryRun {
			continue
		}

		if err := gen.WriteFiles(files, dir); err != nil {
			return res, err
		}

		logger.Info("wrote mappers", slog.String("dir", dir), slog.Int("files", len(files)))
	}

	return res, nil
}

// outputDir picks, in order, the Output option, the mapping file's output
// (relative to Dir) and the package directory.
func (o Options) outputDir(mf *mapping.MappingFile, pkg *analyze.Package) string {
	switch {
	case o.Output != "":
		return o.Output
	case mf.Output != "" && filepath.IsAbs(mf.Output):
		return mf.Output
	case mf.Output != "":
		return filepath.Join(o.Dir, mf.Output)
	default:
		return pkg.Dir
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Select narrows mf to the named types. A name with no target in mf becomes
// a target without overrides. With no names mf is returned unchanged.
func Select(mf *mapping.MappingFile, types ...string) *mapping.MappingFile {
	if len(types) == 0 {
		return mf
	}

	out := *mf
	out.Targets = nil

	for _, name := range types {
		i := slices.IndexFunc(mf.Targets, func(t mapping.Target) bool { return t.Type == name })
		if i < 0 {
			out.Targets = append(out.Targets, mapping.Target{Type: name})
			continue
		}

		out.Targets = append(out.Targets, mf.Targets[i])
	}

	return &out
}

// FromFlags builds a mapping file for the given packages and types, used
// when no mapping file is given.
func FromFlags(pkgs []string, types []string) *mapping.MappingFile {
	mf := &mapping.MappingFile{
		Version:  mapping.CurrentVersion,
		Packages: mapping.StringOrArray(slices.Clone(pkgs)),
	}

	for _, name := range types {
		mf.Targets = append(mf.Targets, mapping.Target{Type: name})
	}

	return mf
}

// WrapAll enables the optional-wrapping pre-pass on every target of mf.
// name sets the wrapped struct's name and requires a single target.
func WrapAll(mf *mapping.MappingFile, name string) error {
	if name != "" && len(mf.Targets) != 1 {
		return fmt.Errorf("a wrapped name needs exactly one target, got %d", len(mf.Targets))
	}

	for i := range mf.Targets {
		mf.Targets[i].WrapOptional = true
		if name != "" {
			mf.Targets[i].WrappedName = name
		}
	}

	return nil
}
