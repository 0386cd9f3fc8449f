package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile. Unknown keys are rejected.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&mf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
