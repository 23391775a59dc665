// File: pkg/digest/traversal.go
package digest

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// visitFunc is called for every eligible file. A returned error stops the walk.
type visitFunc func(relPath string) error

// walk visits the files of dir and then descends into its subdirectories.
// Ignored subdirectories are pruned before they are read.
func (b *Builder) walk(dir string, visit visitFunc) error {
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		b.logger.Warn("Error reading directory during traversal", zap.String("directory", dir), zap.Error(err))
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		relPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if b.rules.SkipDir(entry.Name()) {
				b.logger.Debug("Skipping ignored directory during traversal", zap.String("directory", relPath))
				continue
			}
			subdirs = append(subdirs, relPath)
			continue
		}

		if entry.Mode()&os.ModeSymlink != 0 && b.isDirLink(relPath) {
			b.logger.Debug("Not following directory symlink", zap.String("path", relPath))
			continue
		}

		if !b.rules.Eligible(entry.Name()) {
			b.logger.Debug("Skipping file not matching rules", zap.String("filePath", relPath))
			continue
		}

		if relPath == b.output {
			b.logger.Debug("Skipping digest output file", zap.String("filePath", relPath))
			continue
		}

		if err := visit(relPath); err != nil {
			return err
		}
	}

	for _, subdir := range subdirs {
		if err := b.walk(subdir, visit); err != nil {
			return err
		}
	}
	return nil
}

// isDirLink reports whether the symlink at relPath resolves to a directory.
func (b *Builder) isDirLink(relPath string) bool {
	info, err := b.fs.Stat(relPath)
	return err == nil && info.IsDir()
}
