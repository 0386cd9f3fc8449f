// Package rowmap is the runtime support used by code emitted by
// rowmap-generator.
//
// Generated mappers never touch a database driver directly. They talk to a
// [Row], which answers two questions: does a column with a given name exist,
// and can that column be decoded into a Go value. Adapters for database/sql
// (package sqlrow) and pgx (package pgxrow) implement Row; [Values] is an
// in-memory implementation for tests and fixtures.
//
// Generated code follows a single pattern per field:
//
//	if v, err := rowmap.Get[int32](row, "id"); err == nil {
//		out.ID = v
//	} else {
//		out.ID = rowmap.Default[int32]()
//	}
//
// Absence, decode failures and conversion failures all fall back to the
// field's default (or the empty [Option]).
package rowmap
