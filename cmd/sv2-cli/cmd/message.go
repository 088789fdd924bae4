package cmd

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Commands related to Stratum V2 messages.",
}

var messageSampleCmd = &cobra.Command{
	Use:   "sample <message-type>",
	Short: "Generates a sample message with representative field values.",
	Args:  cobra.ExactArgs(1),
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

		msg, err := rpc.GenerateTestMessage(client, args[0])
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, msg)
		}

		fmt.Printf("%s (%s)\n", msg.MessageType, msg.Subprotocol)
		fmt.Println(msg.Description)
		table := cli.NewTable(os.Stdout, "Field", "Value")
		for _, f := range msg.Fields {
			table.Append([]string{f.Name, f.Value})
		}
		table.Render()
		return nil
	},
}

func init() {
	messageCmd.AddCommand(messageSampleCmd)
	rootCmd.AddCommand(messageCmd)
}
