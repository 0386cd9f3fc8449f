package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only supported schema version.
const CurrentVersion = "1"

// MappingFile represents the root of a YAML mapping file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages are the package patterns to load (e.g. "./models").
	Packages StringOrArray `yaml:"packages"`

	// Decodable lists type expressions a registry decoder handles.
	Decodable StringOrArray `yaml:"decodable,omitempty"`

	// Output overrides the directory generated files are written to.
	Output string `yaml:"output,omitempty"`

	// Targets are the structs to generate mappers for.
	Targets []Target `yaml:"targets"`
}

// Target selects one struct and adjusts its directives.
type Target struct {
	// Type is the struct name.
	Type string `yaml:"type"`

	// Package disambiguates Type by import path or package name.
	Package string `yaml:"package,omitempty"`

	// WrapOptional generates a copy of the struct with every field optional.
	WrapOptional bool `yaml:"wrap_optional,omitempty"`

	// WrappedName names the wrapped copy; defaults to Optional<Type>.
	WrappedName string `yaml:"wrapped_name,omitempty"`

	// Fields override tag directives.
	Fields []FieldOverride `yaml:"fields,omitempty"`
}

// FieldOverride sets directives of one field. Nil means "keep the tag's".
type FieldOverride struct {
	Name    string  `yaml:"name"`
	Rename  *string `yaml:"rename,omitempty"`
	From    *string `yaml:"from,omitempty"`
	TryFrom *string `yaml:"try_from,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str == "" {
			*s = StringOrArray{}
		} else {
			*s = StringOrArray{str}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
