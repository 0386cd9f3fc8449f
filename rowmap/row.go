package rowmap

import (
	"database/sql"
	"reflect"
)

// Row is one row of tabular data.
type Row interface {
	// HasColumn reports whether the row exposes a column with exactly this name.
	HasColumn(name string) bool
	// Decode decodes the named column into dest, which must be a non-nil pointer.
	Decode(name string, dest any) error
}

// Rows is a cursor over rows. The cursor itself is the current Row.
type Rows interface {
	Row
	Next() bool
	Err() error
}

// Defaulter is implemented by types that provide their own default value.
type Defaulter[T any] interface {
	Default() T
}

// Get decodes column as T.
// It returns ErrColumnNotFound (wrapped in *MapperError) when the column is absent.
func Get[T any](row Row, column string) (T, error) {
	var v T

	if !row.HasColumn(column) {
		return v, &MapperError{Column: column, Err: ErrColumnNotFound}
	}

	if err := row.Decode(column, &v); err != nil {
		var zero T
		return zero, &MapperError{Column: column, Err: err}
	}

	return v, nil
}

// TryGet decodes column as S and converts it to T through (*T).Scan.
// A failed conversion is reported as a *ConversionError inside *MapperError.
func TryGet[S, T any, PT interface {
	*T
	sql.Scanner
}](row Row, column string) (T, error) {
	var out T

	src, err := Get[S](row, column)
	if err != nil {
		return out, err
	}

	if err := PT(&out).Scan(any(src)); err != nil {
		var zero T

		return zero, &MapperError{
			Column: column,
			Err: &ConversionError{
				Source: typeName[S](),
				Target: typeName[T](),
				Err:    err,
			},
		}
	}

	return out, nil
}

// Default returns the default value of T: the result of its Default method
// when T or *T implements Defaulter[T], the zero value otherwise.
func Default[T any]() T {
	var zero T

	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}

	if d, ok := any(&zero).(Defaulter[T]); ok {
		return d.Default()
	}

	return zero
}

// Collect drains rows, mapping each one with fn.
func Collect[T any](rows Rows, fn func(Row) (T, error)) ([]T, error) {
	var out []T

	for rows.Next() {
		v, err := fn(rows)
		if err != nil {
			return out, err
		}

		out = append(out, v)
	}

	return out, rows.Err()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
