package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codedigest/pkg/digest"
	"codedigest/pkg/logging"
)

// runDigest digests the working directory and reports progress on the command's output.
func runDigest(cmd *cobra.Command, showTree bool) error {
	logger := logging.L()

	root, err := os.Getwd()
	if err != nil {
		logger.Error("Failed to resolve working directory", zap.Error(err))
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	builder := digest.NewBuilder(osfs.New(root),
		digest.WithLogger(logger),
		digest.WithReporter(digest.NewConsoleReporter(out)),
	)

	result, err := builder.Run()
	if err != nil {
		return fmt.Errorf("digest execution failed: %w", err)
	}

	if showTree {
		fmt.Fprintln(out)
		fmt.Fprint(out, digest.Tree(".", result.Files))
	}
	return nil
}
