package cmd

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var configuredHomeDir string

var rootCmd = &cobra.Command{
	Use:   "sv2d",
	Short: "Stratum V2 inspection daemon",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		configuredHomeDir = cli.GetHomeDir(cmd)
		if err := config.EnsureHomeDir(configuredHomeDir); err != nil {
			return errors.Wrap(err, "error ensuring home directory")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.sv2d", "Home directory for the daemon's config and database.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
