// Package plan compiles a struct schema into row-decoding mappers.
//
// Compilation pipeline, per struct:
//  1. Extract a FieldSpec from every RawField (type expressions parsed with go/parser)
//  2. Validate directives field by field, stopping at the first failure
//  3. Synthesize the capability constraints each field imposes
//  4. Build the total and fallible decoding expressions for each field
//  5. Assemble a GeneratedMapper consumed by the code generator
//
// The package is pure: no I/O, no logging, no shared state. WrapOptional is an
// independent pre-pass that can be applied to a RawStruct before Compile.
package plan
