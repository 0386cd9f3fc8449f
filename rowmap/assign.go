package rowmap

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Assign stores src, a driver or decoded column value, into the value dest
// points to, applying the conversions database/sql applies to driver values.
// Row adapters use it for values they already hold in memory.
func Assign(dest, src any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("rowmap: destination must be a non-nil pointer, got %T", dest)
	}

	return assignValue(dv.Elem(), src)
}

func assignValue(dv reflect.Value, src any) error {
	if src == nil {
		if s, ok := scannerOf(dv); ok {
			return s.Scan(nil)
		}

		switch dv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
			dv.SetZero()
			return nil
		default:
			return fmt.Errorf("rowmap: cannot assign NULL to %s", dv.Type())
		}
	}

	sv := reflect.ValueOf(src)

	// Fixed-size byte values such as the [16]byte pgx decodes uuid columns to.
	if sv.Kind() == reflect.Array && dv.Kind() == reflect.Array && sv.Type().ConvertibleTo(dv.Type()) {
		dv.Set(sv.Convert(dv.Type()))
		return nil
	}

	if s, ok := scannerOf(dv); ok {
		return s.Scan(src)
	}

	if sv.Type().AssignableTo(dv.Type()) {
		dv.Set(sv)
		return nil
	}

	switch dv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dv.Type().Elem())
		if err := assignValue(elem.Elem(), src); err != nil {
			return err
		}

		dv.Set(elem)

		return nil

	case reflect.String:
		if s, ok := asString(sv); ok {
			dv.SetString(s)
			return nil
		}

	case reflect.Slice:
		if dv.Type().Elem().Kind() == reflect.Uint8 {
			if b, ok := asBytes(sv); ok {
				dv.Set(reflect.ValueOf(b).Convert(dv.Type()))
				return nil
			}
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := asInt(sv)
		if err != nil {
			return fmt.Errorf("rowmap: converting %T to %s: %w", src, dv.Type(), err)
		}

		if dv.OverflowInt(n) {
			return fmt.Errorf("rowmap: value %d overflows %s", n, dv.Type())
		}

		dv.SetInt(n)

		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := asUint(sv)
		if err != nil {
			return fmt.Errorf("rowmap: converting %T to %s: %w", src, dv.Type(), err)
		}

		if dv.OverflowUint(n) {
			return fmt.Errorf("rowmap: value %d overflows %s", n, dv.Type())
		}

		dv.SetUint(n)

		return nil

	case reflect.Float32, reflect.Float64:
		f, err := asFloat(sv)
		if err != nil {
			return fmt.Errorf("rowmap: converting %T to %s: %w", src, dv.Type(), err)
		}

		if dv.OverflowFloat(f) {
			return fmt.Errorf("rowmap: value %v overflows %s", f, dv.Type())
		}

		dv.SetFloat(f)

		return nil

	case reflect.Bool:
		b, err := asBool(sv)
		if err != nil {
			return fmt.Errorf("rowmap: converting %T to %s: %w", src, dv.Type(), err)
		}

		dv.SetBool(b)

		return nil

	default:
		if dv.Kind() == sv.Kind() && sv.Type().ConvertibleTo(dv.Type()) {
			dv.Set(sv.Convert(dv.Type()))
			return nil
		}
	}

	return fmt.Errorf("rowmap: cannot assign %T to %s", src, dv.Type())
}

func scannerOf(dv reflect.Value) (sql.Scanner, bool) {
	if !dv.CanAddr() {
		return nil, false
	}

	s, ok := dv.Addr().Interface().(sql.Scanner)

	return s, ok
}

func asString(sv reflect.Value) (string, bool) {
	switch sv.Kind() {
	case reflect.String:
		return sv.String(), true
	case reflect.Slice:
		if sv.Type().Elem().Kind() == reflect.Uint8 {
			return string(sv.Bytes()), true
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(sv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(sv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(sv.Float(), 'g', -1, sv.Type().Bits()), true
	case reflect.Bool:
		return strconv.FormatBool(sv.Bool()), true
	}

	return "", false
}

func asBytes(sv reflect.Value) ([]byte, bool) {
	switch sv.Kind() {
	case reflect.String:
		return []byte(sv.String()), true
	case reflect.Slice:
		if sv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), sv.Bytes()...), true
		}
	}

	return nil, false
}

func asInt(sv reflect.Value) (int64, error) {
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if sv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", sv.Uint())
		}

		return int64(sv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := sv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
			return 0, fmt.Errorf("value %v is not an integer", f)
		}

		return int64(f), nil
	}

	if s, ok := asString(sv); ok {
		return strconv.ParseInt(s, 10, 64)
	}

	return 0, fmt.Errorf("unsupported source %s", sv.Type())
}

func asUint(sv reflect.Value) (uint64, error) {
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if sv.Int() < 0 {
			return 0, fmt.Errorf("negative value %d", sv.Int())
		}

		return uint64(sv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return sv.Uint(), nil
	}

	if s, ok := asString(sv); ok {
		return strconv.ParseUint(s, 10, 64)
	}

	return 0, fmt.Errorf("unsupported source %s", sv.Type())
}

func asFloat(sv reflect.Value) (float64, error) {
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(sv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(sv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return sv.Float(), nil
	}

	if s, ok := asString(sv); ok {
		return strconv.ParseFloat(s, 64)
	}

	return 0, fmt.Errorf("unsupported source %s", sv.Type())
}

func asBool(sv reflect.Value) (bool, error) {
	switch sv.Kind() {
	case reflect.Bool:
		return sv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sv.Int() != 0, nil
	}

	if s, ok := asString(sv); ok {
		return strconv.ParseBool(s)
	}

	return false, fmt.Errorf("unsupported source %s", sv.Type())
}
