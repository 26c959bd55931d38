package cmd

import (
	"fmt"

	"gitflat/pkg/flatten"
	"gitflat/pkg/logging"
	"gitflat/pkg/version"

	"github.com/spf13/cobra"
)

var flattenArgs flatten.Arguments

// flattenCmd renders the repository at the given path (default ".") into
// the flattened document.
var flattenCmd = &cobra.Command{
	Use:   "flatten [path]",
	Short: "Flatten a repository into one Markdown document",
	Long: `Flatten lists the tracked files of a git repository, filters them with
--include/--exclude glob patterns, and writes a single Markdown document
containing a file tree and the content of every included text file.

Patterns without a slash match the file name at any depth (e.g. "*.js");
patterns with a slash match the full relative path (e.g. "src/**").
Defaults may be supplied by a .gitflat.yaml at the repository root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flattenArgs.Directory = "."
		if len(args) == 1 {
			flattenArgs.Directory = args[0]
		}

		log := logger
		if flattenArgs.Verbose {
			if err := logging.Setup(true, "gitflat", version.Get().Version); err != nil {
				return fmt.Errorf("failed to configure verbose logging: %w", err)
			}
			log = logging.Logger
		}

		return flatten.Run(cmd.Context(), flattenArgs, log)
	},
}

func init() {
	flattenCmd.Flags().StringArrayVarP(&flattenArgs.Include, "include", "i", nil, "Glob pattern for files to include (repeatable)")
	flattenCmd.Flags().StringArrayVarP(&flattenArgs.Exclude, "exclude", "e", nil, "Glob pattern for files to exclude (repeatable, wins over --include)")
	flattenCmd.Flags().StringVarP(&flattenArgs.Revision, "rev", "r", "", "Flatten this revision instead of the working tree")
	flattenCmd.Flags().StringVarP(&flattenArgs.Output, "output", "o", "", "Write the document to this file instead of stdout")
	flattenCmd.Flags().IntVar(&flattenArgs.MaxFileSizeKB, "max-file-size", 0, "Skip files larger than this many KB (0 = no limit)")
	flattenCmd.Flags().BoolVarP(&flattenArgs.Verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(flattenCmd)
}
