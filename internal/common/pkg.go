package common

import "path"

// UnknownStr is the name printed for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the default package name (last element of path) for a
// package path. Major version suffixes are skipped, so
// "github.com/jackc/pgx/v5" yields "pgx".
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if parent := path.Dir(pkgPath); parent != "." && parent != "/" {
			return path.Base(parent)
		}
	}

	return base
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
