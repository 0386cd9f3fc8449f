// Package pgxrow adapts pgx rows to rowmap.Row.
package pgxrow

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"rowmap-generator/rowmap"
)

// Row wraps the current row of a pgx result set. Columns are read from
// Values, fetched once, and never scanned: pgx closes the result set on the
// first failed scan, which would fail every later row.
type Row struct {
	row      pgx.CollectableRow
	index    map[string]int
	registry *rowmap.Registry

	fetched bool
	values  []any
	err     error
}

var _ rowmap.Row = (*Row)(nil)

// Option configures Row.
type Option func(*Row)

// WithRegistry makes Decode consult r before the runtime's own conversions.
func WithRegistry(r *rowmap.Registry) Option {
	return func(row *Row) {
		row.registry = r
	}
}

// New wraps row.
func New(row pgx.CollectableRow, opts ...Option) *Row {
	fields := row.FieldDescriptions()

	index := make(map[string]int, len(fields))
	for i, fd := range fields {
		if _, dup := index[fd.Name]; !dup {
			index[fd.Name] = i
		}
	}

	r := &Row{
		row:   row,
		index: index,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// HasColumn implements rowmap.Row.
func (r *Row) HasColumn(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Decode implements rowmap.Row. A value that does not fit dest is an error
// for this column only; the result set stays open.
func (r *Row) Decode(name string, dest any) error {
	i, ok := r.index[name]
	if !ok {
		return rowmap.ErrColumnNotFound
	}

	values, err := r.rowValues()
	if err != nil {
		return err
	}

	if i >= len(values) {
		return fmt.Errorf("column %s: row has %d values", name, len(values))
	}

	if handled, err := r.registry.Decode(values[i], dest); handled {
		return err
	}

	return rowmap.Assign(dest, values[i])
}

func (r *Row) rowValues() ([]any, error) {
	if !r.fetched {
		r.values, r.err = r.row.Values()
		r.fetched = true
	}

	return r.values, r.err
}

// RowTo adapts a generated TryFromRow function to pgx.CollectRows:
//
//	accounts, err := pgx.CollectRows(rows, pgxrow.RowTo(AccountTryFromRow))
func RowTo[T any](fn func(rowmap.Row) (T, error), opts ...Option) pgx.RowToFunc[T] {
	return func(row pgx.CollectableRow) (T, error) {
		return fn(New(row, opts...))
	}
}
