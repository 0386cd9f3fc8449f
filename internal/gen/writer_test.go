package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_rowmap.unformatted.go"), []byte("stale"), 0o644))

	files := []GeneratedFile{
		{Filename: "a_rowmap.go", Content: []byte("package a\n")},
		{Filename: "b_rowmap.go", Content: []byte("package a\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}

	_, err := os.Stat(filepath.Join(dir, "a_rowmap.unformatted.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFiles_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	require.NoError(t, WriteFiles([]GeneratedFile{{Filename: "x_rowmap.go", Content: []byte("package x\n")}}, dir))
	assert.FileExists(t, filepath.Join(dir, "x_rowmap.go"))
}

func TestUnformattedName(t *testing.T) {
	assert.Equal(t, "account_rowmap.unformatted.go", UnformattedName("account_rowmap.go"))
}
