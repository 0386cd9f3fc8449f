package rowmap

import (
	"fmt"
	"slices"
)

// Values is an in-memory Row built from parallel column and value slices.
// When a column name repeats, the first occurrence wins.
type Values struct {
	columns  []string
	values   []any
	index    map[string]int
	registry *Registry
}

var _ Row = (*Values)(nil)

// NewValues creates a Row over columns and values.
func NewValues(columns []string, values []any) (*Values, error) {
	if len(columns) != len(values) {
		return nil, fmt.Errorf("rowmap: %d columns but %d values", len(columns), len(values))
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}

	return &Values{
		columns: slices.Clone(columns),
		values:  slices.Clone(values),
		index:   index,
	}, nil
}

// MustValues is NewValues that panics on mismatched lengths.
func MustValues(columns []string, values []any) *Values {
	v, err := NewValues(columns, values)
	if err != nil {
		panic(err)
	}

	return v
}

// WithRegistry returns a copy of v that decodes through r first.
func (v *Values) WithRegistry(r *Registry) *Values {
	out := *v
	out.registry = r

	return &out
}

// Columns returns the column names in order.
func (v *Values) Columns() []string {
	return slices.Clone(v.columns)
}

// HasColumn implements Row.
func (v *Values) HasColumn(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Decode implements Row.
func (v *Values) Decode(name string, dest any) error {
	i, ok := v.index[name]
	if !ok {
		return ErrColumnNotFound
	}

	if handled, err := v.registry.Decode(v.values[i], dest); handled {
		return err
	}

	return Assign(dest, v.values[i])
}
