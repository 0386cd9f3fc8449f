package rowmap

import (
	"database/sql/driver"
	"fmt"
)

// Option holds a value of type T or nothing.
// The zero Option is empty. Packages that want the generator to recognise
// optional fields declare a local alias:
//
//	type Option[T any] = rowmap.Option[T]
type Option[T any] struct {
	V     T
	Valid bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{V: v, Valid: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.V, o.Valid
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.Valid
}

// OrElse returns the held value, or d when o is empty.
func (o Option[T]) OrElse(d T) T {
	if !o.Valid {
		return d
	}

	return o.V
}

// Scan implements sql.Scanner. NULL yields the empty Option.
func (o *Option[T]) Scan(src any) error {
	if src == nil {
		*o = Option[T]{}
		return nil
	}

	var v T
	if err := Assign(&v, src); err != nil {
		return err
	}

	*o = Some(v)

	return nil
}

// Value implements driver.Valuer.
func (o Option[T]) Value() (driver.Value, error) {
	if !o.Valid {
		return nil, nil
	}

	if valuer, ok := any(o.V).(driver.Valuer); ok {
		return valuer.Value()
	}

	return driver.DefaultParameterConverter.ConvertValue(o.V)
}

func (o Option[T]) String() string {
	if !o.Valid {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.V)
}
