package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ultra",
	Short: "ULTRA warehouse slot registry tools",
}

// Execute runs the CLI. Extension commands registered via Register are
// applied first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
