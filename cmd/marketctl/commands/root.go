// Package commands implements marketctl, the operator CLI for the marketplace.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the marketctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "marketctl",
		Short: "Operate the produce marketplace",
		Long: `marketctl runs maintenance tasks against the configured store.

Configuration is read from config/config.yaml with environment overrides, the same
way the API and worker processes load it.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newWeekCommand(),
		newMigrateCommand(),
		newSweepCommand(),
	)

	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
