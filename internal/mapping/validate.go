package mapping

import (
	"errors"
	"fmt"

	"rowmap-generator/internal/analyze"
	"rowmap-generator/internal/diagnostic"
	"rowmap-generator/internal/match"
	"rowmap-generator/internal/plan"
)

const maxSuggestions = 3

// Validate validates a mapping file against the loaded packages. It checks
// structure only; type capabilities are the checker's concern.
func Validate(mf *MappingFile, pkgs []*analyze.Package) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q (expected %q)", mf.Version, CurrentVersion), "", "")
	}

	if len(mf.Packages) == 0 {
		res.AddError(diagnostic.CodeMissingPackages, "no packages configured", "", "")
	}

	seen := map[string]bool{}

	for _, t := range mf.Targets {
		key := t.Package + "." + t.Type
		if seen[key] {
			res.AddError(diagnostic.CodeDuplicateTarget, fmt.Sprintf("target %s listed more than once", t.Type), t.Type, "")
			continue
		}

		seen[key] = true

		validateTarget(res, t, pkgs)
	}

	return res
}

func validateTarget(res *diagnostic.Diagnostics, t Target, pkgs []*analyze.Package) {
	pkg, s, err := t.Resolve(pkgs)
	if err != nil {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeUnknownTarget,
			Message:     fmt.Sprintf("no struct %s in the loaded packages", t.Type),
			Struct:      t.Type,
			Suggestions: match.Suggest(t.Type, structNames(pkgs), maxSuggestions),
		})

		return
	}

	fieldNames := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fieldNames[i] = f.Name
	}

	unknown := false

	for _, o := range t.Fields {
		if fieldIndex(s, o.Name) < 0 {
			unknown = true

			res.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnknownField,
				Message:     fmt.Sprintf("%s has no field %s", s.Name, o.Name),
				Struct:      s.Name,
				Field:       o.Name,
				Suggestions: match.Suggest(o.Name, fieldNames, maxSuggestions),
			})
		}
	}

	if unknown {
		return
	}

	schema, err := t.Schema(s)
	if err != nil {
		res.AddError(diagnostic.CodeInvalidDirective, err.Error(), s.Name, "")
		return
	}

	if _, err := plan.ExtractStruct(schema); err != nil {
		res.Add(DirectiveDiagnostic(err, schema.Name))
	}

	if t.WrapOptional {
		if _, taken := pkg.Lookup(schema.Name); taken {
			res.AddError(diagnostic.CodeNameCollision,
				fmt.Sprintf("wrapped struct name %s is already declared in %s", schema.Name, pkg.Path), s.Name, "")
		}
	}
}

// DirectiveDiagnostic converts a schema or validation error from the
// compiler into a diagnostic.
func DirectiveDiagnostic(err error, structName string) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeInvalidDirective,
		Message:  err.Error(),
		Struct:   structName,
	}

	var se *plan.SchemaError
	if errors.As(err, &se) {
		d.Field = se.Field
		d.Message = fmt.Sprintf("%s %q: %v", se.Directive, se.Input, se.Err)
	}

	var ve *plan.ValidationError
	if errors.As(err, &ve) {
		d.Field = ve.Field
		d.Message = ve.Err.Error()
	}

	return d
}

func structNames(pkgs []*analyze.Package) []string {
	var names []string
	for _, pkg := range pkgs {
		names = append(names, pkg.Names()...)
	}

	return names
}
