// Package cli wires the distroforge commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/distroforge/distroforge/pkg/console"
)

var verboseFlag bool

// NewRootCommand returns the distroforge command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:   "distroforge",
		Short: "Generate a matrix of distribution build images",
		Long: `distroforge renders Dockerfiles for the cross product of supported
distributions, architectures and interpreter versions, either into a
directory or onto per-tag git branches.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				console.SetLevel(console.DebugLevel)
			}
			cmd.SilenceUsage = true
		},
		// Errors are printed once by main.
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newGenerateCommand(),
		newListCommand(),
		newShowCommand(),
	)

	return &rootCmd
}
