package pipeline

import "rowmap-generator/internal/analyze"

func ptr(s string) *string {
	return &s
}

func packageAt(dir string) *analyze.Package {
	return &analyze.Package{Name: "models", Path: "example.com/models", Dir: dir}
}
