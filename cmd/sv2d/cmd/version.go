package cmd

import (
	"fmt"

	"sv2/catalog"
	"sv2/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints build and protocol version information.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("sv2d %s (%s), Stratum V2 %s\n", version.GitTag, version.GitCommit, catalog.ProtocolVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
