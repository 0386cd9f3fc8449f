// Package analyze loads Go packages and extracts the structural schema of
// their struct types.
//
// It uses golang.org/x/tools/go/packages with syntax and go/types. Every
// top-level struct type declaration becomes a plan.RawStruct: fields in
// declaration order, declared type text, rowmap tag directives, doc
// comments, type parameters, file imports and the file's build constraint.
// The loaded *types.Package is kept so the checker can resolve type
// expressions in the struct's scope.
package analyze
