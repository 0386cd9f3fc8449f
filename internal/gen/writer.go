package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist, and removes a stale
// .unformatted.go sidecar of each file it writes.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		sidecar := filepath.Join(outputDir, UnformattedName(file.Filename))
		if err := os.Remove(sidecar); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", UnformattedName(file.Filename), err)
		}
	}

	return nil
}
