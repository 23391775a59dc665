// File: pkg/digest/types.go
package digest

import "fmt"

// Result summarizes a completed run.
type Result struct {
	Output string      // Path of the digest, relative to the root.
	Files  []string    // Root-relative paths written to the digest, in write order.
	Failed []FileError // Files that matched the rules but could not be read.
}

// FileError records a per-file read failure. It never aborts a run.
type FileError struct {
	Path string // Root-relative path of the file.
	Err  error  // Underlying read error.
}

func (e FileError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}
