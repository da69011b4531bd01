package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var stateDir string

var rootCmd = &cobra.Command{
	Use:   "sessionctl",
	Short: "Inspect the onboarding session slot",
	Long: `sessionctl reads and clears the dashboard session stored by the
file session backend. It decodes the slot with the same codec the
server uses, so what it prints is exactly what the dashboard would see.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "./data", "directory the file session backend writes to")
}
