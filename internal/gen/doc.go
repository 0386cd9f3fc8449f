// Package gen renders compiled mappers as Go source.
//
// Generation uses text/template + go/format. Each target struct gets one
// file, <snake_name>_rowmap.go, holding two functions:
//
//	func <Type>FromRow(row rowmap.Row) <Type>
//	func <Type>TryFromRow(row rowmap.Row) (<Type>, error)
//
// and, for structs produced by the optional-wrapping pre-pass, the struct
// definition itself. Output that go/format rejects is kept in a
// .unformatted.go sidecar for debugging.
package gen
