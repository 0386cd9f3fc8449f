// Package sqlrow adapts database/sql result sets to rowmap.Row.
package sqlrow

import (
	"database/sql"
	"fmt"
	"reflect"

	"rowmap-generator/rowmap"
)

// Rows wraps *sql.Rows. Between calls to Next it is the current rowmap.Row.
type Rows struct {
	rows     *sql.Rows
	columns  []string
	index    map[string]int
	registry *rowmap.Registry
}

var _ rowmap.Rows = (*Rows)(nil)

// Option configures Rows.
type Option func(*Rows)

// WithRegistry makes Decode consult r before the driver's own conversion.
func WithRegistry(r *rowmap.Registry) Option {
	return func(rs *Rows) {
		rs.registry = r
	}
}

// New wraps rows. The caller keeps ownership of rows and must close them.
func New(rows *sql.Rows, opts ...Option) (*Rows, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	rs := &Rows{
		rows:    rows,
		columns: columns,
		index:   index,
	}

	for _, opt := range opts {
		opt(rs)
	}

	return rs, nil
}

// Columns returns the result set's column names.
func (r *Rows) Columns() []string {
	return r.columns
}

// Next advances to the next row.
func (r *Rows) Next() bool {
	return r.rows.Next()
}

// Err returns the error, if any, encountered during iteration.
func (r *Rows) Err() error {
	return r.rows.Err()
}

// HasColumn implements rowmap.Row.
func (r *Rows) HasColumn(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Decode implements rowmap.Row by scanning only the requested column.
// database/sql allows Scan to be called more than once per row.
func (r *Rows) Decode(name string, dest any) error {
	i, ok := r.index[name]
	if !ok {
		return rowmap.ErrColumnNotFound
	}

	dests := make([]any, len(r.columns))
	for j := range dests {
		if j != i {
			dests[j] = new(any)
		}
	}

	if rt := reflect.TypeOf(dest); rt != nil && rt.Kind() == reflect.Pointer {
		if decode, found := r.registry.Lookup(rt.Elem()); found {
			var raw any
			dests[i] = &raw

			if err := r.rows.Scan(dests...); err != nil {
				return err
			}

			return decode(raw, dest)
		}
	}

	dests[i] = dest

	return r.rows.Scan(dests...)
}

// Collect maps every row of rows with fn and closes rows.
func Collect[T any](rows *sql.Rows, fn func(rowmap.Row) (T, error), opts ...Option) ([]T, error) {
	defer rows.Close()

	rs, err := New(rows, opts...)
	if err != nil {
		return nil, err
	}

	return rowmap.Collect(rs, fn)
}
