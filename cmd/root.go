package cmd

import (
	"github.com/spf13/cobra"

	"codedigest/pkg/logging"
	"codedigest/pkg/version"
)

const appName = "codedigest"

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the base command. Run without arguments, it digests the
// current working directory.
func NewRootCmd() *cobra.Command {
	var (
		debug    bool
		showTree bool
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Digest a codebase into a single text file",
		Long: `codedigest walks the current directory, skips build, dependency and VCS folders,
and concatenates source files into ` + "`_codebase_digest.txt`" + ` for loading into an LLM context window.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !debug {
				return nil
			}
			return logging.Setup(true, appName, version.Version)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDigest(cmd, showTree)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&showTree, "tree", false, "print a tree of the digested files after the summary")
	cmd.AddCommand(newVersionCmd())
	return cmd
}
