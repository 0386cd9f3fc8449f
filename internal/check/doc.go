// Package check verifies, before any code is written, that the types named
// by a compiled mapper have the capabilities the generated code relies on.
//
// Type expressions are resolved with go/types in the scope of the struct
// declaration, so file imports and type parameters are visible. Findings
// are reported as diagnostic.Diagnostics; unresolvable names come with
// suggestions from internal/match.
package check
