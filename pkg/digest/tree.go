// File: pkg/digest/tree.go
package digest

import (
	"path/filepath"

	"github.com/disiqueira/gotree/v3"
)

// Tree renders root-relative file paths as a directory tree under label.
// Directories appear in the order their first file was seen.
func Tree(label string, paths []string) string {
	root := gotree.New(label)
	dirs := map[string]gotree.Tree{".": root}

	var dirNode func(dir string) gotree.Tree
	dirNode = func(dir string) gotree.Tree {
		if node, ok := dirs[dir]; ok {
			return node
		}
		node := dirNode(filepath.Dir(dir)).Add(filepath.Base(dir) + "/")
		dirs[dir] = node
		return node
	}

	for _, path := range paths {
		dirNode(filepath.Dir(path)).Add(filepath.Base(path))
	}
	return root.Print()
}
