// File: pkg/digest/file_processing.go
package digest

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// readFile returns the content of a root-relative file as text.
// Invalid UTF-8 sequences are dropped rather than failing the read.
func (b *Builder) readFile(relPath string) (string, error) {
	b.logger.Debug("Reading file content", zap.String("filePath", relPath))

	fileBytes, err := util.ReadFile(b.fs, relPath)
	if err != nil {
		return "", err
	}

	b.logger.Debug("Successfully read file content",
		zap.String("filePath", relPath),
		zap.Int("contentSizeBytes", len(fileBytes)))
	return strings.ToValidUTF8(string(fileBytes), ""), nil
}

// writeBlock writes one file wrapped in its start and end markers.
func writeBlock(w *bufio.Writer, relPath, content string) error {
	if _, err := fmt.Fprintf(w, "--- START FILE: %s ---\n", relPath); err != nil {
		return err
	}
	if _, err := w.WriteString(content); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n--- END FILE: %s ---\n\n", relPath)
	return err
}
