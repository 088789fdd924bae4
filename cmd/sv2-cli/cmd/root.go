package cmd

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/cmd/sv2-cli/cmd/capture"
	"sv2/cmd/sv2-cli/cmd/ext"
	"sv2/cmd/sv2-cli/cmd/protocol"
	"sv2/cmd/sv2-cli/cmd/tlv"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sv2-cli",
	Short:         "Command-line RPC interface for sv2d.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int(cli.FlagRPCPort, 9198, "RPC port to connect to.")
	rootCmd.PersistentFlags().String(cli.FlagRPCHost, "127.0.0.1", "RPC host to connect to.")
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.sv2-cli", "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, cli.FormatText, "Output format (text or json).")
	protocol.AddCmd(rootCmd)
	ext.AddCmd(rootCmd)
	tlv.AddCmd(rootCmd)
	capture.AddCmd(rootCmd)
}
