package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"rowmap-generator/internal/common"
)

// Codes reported by the checker and the mapping validator.
const (
	CodeInvalidDirective   = "invalid_directive"
	CodeUnknownType        = "unknown_type"
	CodeNotDecodable       = "not_decodable"
	CodeNotConvertible     = "not_convertible"
	CodeNotScanner         = "not_scanner"
	CodeOptionNotInScope   = "option_not_in_scope"
	CodeDefaulter          = "defaulter"
	CodeUnknownTarget      = "unknown_target"
	CodeUnknownField       = "unknown_field"
	CodeDuplicateTarget    = "duplicate_target"
	CodeUnsupportedVersion = "unsupported_version"
	CodeMissingPackages    = "missing_packages"
	CodeNameCollision      = "name_collision"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Struct names the target struct (if any).
	Struct string
	// Field names the field within Struct (if any).
	Field string
	// Position is a file:line:column location (if known).
	Position string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, structName, field string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message, Struct: structName, Field: field})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, structName, field string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Struct: structName, Field: field})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, structName, field string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Struct: structName, Field: field})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Codes lists the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	var out []string
	for _, diag := range d.All() {
		out = append(out, diag.Code)
	}

	return out
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Position != "" {
		prefix = append(prefix, d.Position)
	}

	switch {
	case d.Struct != "" && d.Field != "":
		prefix = append(prefix, d.Struct+"."+d.Field)
	case d.Struct != "":
		prefix = append(prefix, d.Struct)
	case d.Field != "":
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
