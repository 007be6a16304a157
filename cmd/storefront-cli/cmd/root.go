package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront-cli",
	Short: "Storefront CLI tool",
	Long: `Storefront CLI is a command-line interface for the Vasthra Silks storefront.

Available commands:
  catalog fetch      Fetch and print the normalized catalog
  catalog validate   Fetch the feed and report shape problems

Use "storefront-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
