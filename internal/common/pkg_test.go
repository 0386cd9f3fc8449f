package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"", ""},
		{"time", "time"},
		{"github.com/google/uuid", "uuid"},
		{"github.com/jackc/pgx/v5", "pgx"},
		{"rowmap-generator/rowmap", "rowmap"},
		{"example.com/v2", "example.com"},
		{"gopkg.in/yaml.v3", "yaml.v3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, PkgAlias(tt.path))
		})
	}
}
