package hidden

import (
	"path/filepath"
	"strings"
)

// Hidden reports whether a record for path must be ignored.
func (f *Filter) Hidden(path string) bool {
	path = filepath.Clean(path)

	if f.root == "" {
		return f.match(filepath.Base(path))
	}

	rel, err := filepath.Rel(f.root, path)
	if err != nil || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.match(filepath.Base(path))
	}

	if rel == "." {
		// NOTE: The root itself is never hidden.
		return false
	}

	for _, component := range strings.Split(rel, string(filepath.Separator)) {
		if f.match(component) {
			return true
		}
	}

	return false
}

func (f *Filter) match(name string) bool {
	return strings.HasPrefix(name, f.prefix)
}
