package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "gitflat",
	Short: "gitflat flattens a git repository into a single document",
	Long: `gitflat writes the tracked contents of a git repository (working tree
or a specific revision) into one Markdown document with a file tree,
fenced file bodies, and an estimated token count.`,
	SilenceUsage: true,
}

// logger is shared by subcommands; set by Execute.
var logger *zap.Logger

// Execute wires the logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
