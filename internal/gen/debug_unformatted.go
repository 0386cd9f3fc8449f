package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// UnformattedName is the sidecar name used for filename when formatting fails.
func UnformattedName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code next to the intended output.
// It is best-effort; callers ignore its error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, UnformattedName(filename)), content, filePerm)
}
