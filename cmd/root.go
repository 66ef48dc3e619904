package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overridden at startup from the embedded VERSION file.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "narya",
	Short:   "Narya chronological media renamer",
	Version: Version,
}

// ApplyVersion re-applies Version to the root command after it has been
// updated from the embedded file.
func ApplyVersion() {
	rootCmd.Version = Version
}

func Execute() error {
	return rootCmd.Execute()
}
