// File: pkg/digest/filter.go
package digest

import (
	"path/filepath"
	"strings"
)

// SkipDir reports whether a directory with the given basename is pruned.
func (r Rules) SkipDir(name string) bool {
	_, ok := r.IgnoreDirs[name]
	return ok
}

// Eligible reports whether a file with the given basename is digested.
// The ignore-files check wins over the extension check.
func (r Rules) Eligible(name string) bool {
	if _, ignored := r.IgnoreFiles[name]; ignored {
		return false
	}
	ext := extension(name)
	if ext == "" {
		return false
	}
	_, ok := r.IncludeExts[ext]
	return ok
}

// extension returns the suffix starting at the last dot of name.
// Leading dots never start an extension, so ".env" has none and
// ".env.local" has ".local".
func extension(name string) string {
	return filepath.Ext(strings.TrimLeft(name, "."))
}
