package analyze

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"rowmap-generator/internal/plan"
)

// TagKey is the struct tag key holding field directives.
const TagKey = "rowmap"

// Directive names accepted in the tag.
const (
	DirectiveRename  = "rename"
	DirectiveFrom    = "from"
	DirectiveTryFrom = "try_from"
)

// ErrInvalidTag is reported for a malformed rowmap tag.
var ErrInvalidTag = errors.New("invalid rowmap tag")

// Directives are the values of one rowmap tag. Nil means absent.
type Directives struct {
	Rename  *string
	From    *string
	TryFrom *string
}

// Apply copies the directives present in d onto f.
func (d Directives) Apply(f *plan.RawField) {
	if d.Rename != nil {
		f.Rename = d.Rename
	}

	if d.From != nil {
		f.From = d.From
	}

	if d.TryFrom != nil {
		f.TryFrom = d.TryFrom
	}
}

// ParseTag reads the rowmap key of a raw struct tag (without backquotes).
//
// The value is a comma separated list of key=value pairs. Commas nested
// inside brackets, parentheses or braces are part of the value, so
// `rowmap:"from=map[string]int,rename=m"` has two entries.
func ParseTag(tag string) (Directives, error) {
	var d Directives

	value, ok := reflect.StructTag(tag).Lookup(TagKey)
	if !ok {
		return d, nil
	}

	for _, entry := range splitTopLevel(value) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, val, ok := strings.Cut(entry, "=")
		if !ok {
			return Directives{}, fmt.Errorf("%w: entry %q has no value", ErrInvalidTag, entry)
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		var slot **string

		switch key {
		case DirectiveRename:
			slot = &d.Rename
		case DirectiveFrom:
			slot = &d.From
		case DirectiveTryFrom:
			slot = &d.TryFrom
		default:
			return Directives{}, fmt.Errorf("%w: unknown directive %q", ErrInvalidTag, key)
		}

		if *slot != nil {
			return Directives{}, fmt.Errorf("%w: directive %q repeated", ErrInvalidTag, key)
		}

		*slot = &val
	}

	return d, nil
}

func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}
