package cmd

import (
	"fmt"

	"sv2/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the CLI's build information.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("sv2-cli %s (%s)\n", version.GitTag, version.GitCommit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
