// File: pkg/digest/builder.go
package digest

import (
	"bufio"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder writes the digest of a directory tree.
type Builder struct {
	fs       billy.Filesystem // Filesystem rooted at the directory being digested.
	rules    Rules
	output   string
	logger   *zap.Logger
	reporter Reporter
}

// Option configures a Builder.
type Option func(*Builder)

// WithRules replaces the default rule set.
func WithRules(rules Rules) Option {
	return func(b *Builder) { b.rules = rules }
}

// WithOutput sets the digest path, relative to the root.
func WithOutput(path string) Option {
	return func(b *Builder) { b.output = filepath.Clean(path) }
}

// WithLogger sets the diagnostic logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger == nil {
			logger = zap.NewNop()
		}
		b.logger = logger
	}
}

// WithReporter sets where operator progress is written.
func WithReporter(r Reporter) Option {
	return func(b *Builder) {
		if r == nil {
			r = NopReporter{}
		}
		b.reporter = r
	}
}

// NewBuilder returns a Builder over fsys, whose root is the directory to digest.
func NewBuilder(fsys billy.Filesystem, opts ...Option) *Builder {
	b := &Builder{
		fs:       fsys,
		rules:    DefaultRules(),
		output:   OutputFile,
		logger:   zap.NewNop(),
		reporter: NopReporter{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run writes the digest. Unreadable files are reported and skipped; only
// failures on the output file itself are returned.
func (b *Builder) Run() (*Result, error) {
	startTime := time.Now()
	root := b.fs.Root()
	b.logger.Info("Starting digest", zap.String("root", root), zap.String("output", b.output))
	b.reporter.Start(root)

	result, err := b.build()
	if err != nil {
		b.logger.Error("Failed to write digest", zap.String("output", b.output), zap.Error(err))
		return nil, err
	}

	b.reporter.Complete(len(result.Files), result.Output)
	b.logger.Info("Digest completed",
		zap.Int("totalFiles", len(result.Files)),
		zap.Int("failedFiles", len(result.Failed)),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// build owns the output file for the duration of the run and closes it on every path.
func (b *Builder) build() (result *Result, err error) {
	outFile, err := b.fs.Create(b.output)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	result = &Result{Output: b.output}
	err = b.walk(".", func(relPath string) error {
		content, readErr := b.readFile(relPath)
		if readErr != nil {
			b.logger.Warn("Failed to read file", zap.String("filePath", relPath), zap.Error(readErr))
			result.Failed = append(result.Failed, FileError{Path: relPath, Err: readErr})
			b.reporter.Failed(relPath, readErr)
			return nil
		}

		if err := writeBlock(writer, relPath, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", relPath, err)
		}
		result.Files = append(result.Files, relPath)
		b.reporter.Processed(relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}
	return result, nil
}
