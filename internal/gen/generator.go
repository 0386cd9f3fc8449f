package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"rowmap-generator/internal/match"
	"rowmap-generator/internal/plan"
)

// FileSuffix is appended to the snake_case struct name to form the output file name.
const FileSuffix = "_rowmap.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is where unformatted sidecars are written when formatting fails.
	// Generated files themselves are written by WriteFiles.
	OutputDir string
	// GenerateComments enables the doc comments on emitted functions.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{GenerateComments: true}
}

// Generator renders GeneratedMappers to Go files.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{
		config: config,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "account_rowmap.go").
	Filename string
	// Struct is the name of the struct the file maps.
	Struct string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the output file name for a struct.
func Filename(structName string) string {
	return match.SnakeCase(structName) + FileSuffix
}

// Generate renders the mappers, one file each. Two mappers of one package
// may not share an output file name.
func (g *Generator) Generate(mappers []*plan.GeneratedMapper) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(mappers))
	owners := make(map[string]string, len(mappers))

	for _, m := range mappers {
		key := m.Struct.PkgPath + "/" + Filename(m.Struct.Name)
		if other, dup := owners[key]; dup {
			return nil, fmt.Errorf("%s and %s both generate %s", other, m.Struct.Name, Filename(m.Struct.Name))
		}

		owners[key] = m.Struct.Name

		file, err := g.GenerateMapper(m)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", m.Struct.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateMapper renders one mapper.
func (g *Generator) GenerateMapper(m *plan.GeneratedMapper) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(m)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := mapperTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Struct:   m.Struct.Name,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	g.logger.Debug("generated mapper",
		slog.String("struct", m.Struct.Name),
		slog.String("file", data.Filename),
		slog.Int("fields", len(m.Fields)))

	return &GeneratedFile{
		Filename: data.Filename,
		Struct:   m.Struct.Name,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the mapper template.
type templateData struct {
	PackageName      string
	Filename         string
	BuildConstraint  string
	Imports          []importSpec
	StructDef        string
	GenerateComments bool
	Runtime          string
	TypeName         string
	TypeExpr         string
	TypeParams       string
	FromRowFunc      string
	TryFromRowFunc   string
	Requirements     []string
	Fields           []plan.FieldMapping
}

func (g *Generator) buildTemplateData(m *plan.GeneratedMapper) (*templateData, error) {
	imports, err := collectImports(m)
	if err != nil {
		return nil, err
	}

	data := &templateData{
		PackageName:      m.Struct.PkgName,
		Filename:         Filename(m.Struct.Name),
		BuildConstraint:  m.Struct.BuildConstraint,
		Imports:          imports,
		GenerateComments: g.config.GenerateComments,
		Runtime:          plan.RuntimePkgName,
		TypeName:         m.Struct.Name,
		TypeExpr:         m.TypeExpr,
		TypeParams:       m.TypeParamList(),
		FromRowFunc:      m.FromRowFunc,
		TryFromRowFunc:   m.TryFromRowFunc,
		Fields:           m.Fields,
	}

	if data.PackageName == "" {
		return nil, fmt.Errorf("struct %s has no package name", m.Struct.Name)
	}

	for _, c := range m.Requirements() {
		data.Requirements = append(data.Requirements, c.String())
	}

	if m.Struct.EmitDefinition {
		data.StructDef = g.GenerateStruct(m.Struct)
	}

	return data, nil
}

// commentLines renders lines as // comments.
func commentLines(lines []string, indent string) string {
	var sb strings.Builder

	for _, l := range lines {
		if l == "" {
			sb.WriteString(indent + "//\n")
			continue
		}

		sb.WriteString(indent + "// " + l + "\n")
	}

	return sb.String()
}

// Template for the mapper file

var mapperTemplate = template.Must(template.New("mapper").Parse(`// Code generated by rowmap-generator. DO NOT EDIT.

{{if .BuildConstraint}}//go:build {{.BuildConstraint}}

{{end}}package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .StructDef}}
{{.StructDef}}
{{end}}
{{if .GenerateComments}}// {{.FromRowFunc}} builds {{.TypeName}} from row. A field whose column is
// missing or cannot be decoded is set to its default value.
{{- if .Requirements}}
//
// Requirements:
{{- range .Requirements}}
//   - {{.}}
{{- end}}
{{- end}}
{{end}}func {{.FromRowFunc}}{{.TypeParams}}(row {{.Runtime}}.Row) {{.TypeExpr}} {
	var out {{.TypeExpr}}
{{range .Fields}}
	if v, err := {{.Total.Decode}}; err == nil {
		out.{{.Field}} = {{.Total.Value}}
	} else {
		out.{{.Field}} = {{.Total.Fallback}}
	}
{{end}}
	return out
}

{{if .GenerateComments}}// {{.TryFromRowFunc}} is the fallible form of {{.FromRowFunc}}. Field level
// failures fall back to defaults exactly as in {{.FromRowFunc}}, so the
// returned error is always nil.
{{end}}func {{.TryFromRowFunc}}{{.TypeParams}}(row {{.Runtime}}.Row) ({{.TypeExpr}}, error) {
	var out {{.TypeExpr}}
{{range .Fields}}
	if v, err := {{.Fallible.Decode}}; err == nil {
		out.{{.Field}} = {{.Fallible.Value}}
	} else {
		out.{{.Field}} = {{.Fallible.Fallback}}
	}
{{end}}
	return out, nil
}
`))
