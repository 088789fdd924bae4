package protocol

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Lists the Stratum V2 message types.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		types, err := rpc.ListMessageTypes(client)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, types)
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(messagesCmd)
}
