package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scalemyorg-cli",
	Short: "ScaleMyOrg.ai operator tool",
	Long: `scalemyorg-cli inspects a ScaleMyOrg.ai deployment without starting it.

Available commands:
  routes          Print the HTTP route table
  events          List the published session lifecycle events
  check-config    Validate the environment for the selected backends

Use "scalemyorg-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
