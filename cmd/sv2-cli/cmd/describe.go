package cmd

import (
	"fmt"
	"os"
	"strings"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [topic]",
	Short: "Describes a protocol feature topic.",
	Long: `Describes a protocol feature topic such as the Noise handshake or the
supported roles. Without a topic, lists the available topics.`,
	Args: cobra.MaximumNArgs(1),
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

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		res, err := rpc.DescribeTopic(client, name)
		if err != nil {
			return err
		}

		if res.Topic == nil {
			if format == cli.FormatJSON {
				return cli.WriteJSON(os.Stdout, res.Available)
			}
			fmt.Printf("Available topics: %s\n", strings.Join(res.Available, ", "))
			return nil
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, res.Topic)
		}

		fmt.Println(res.Topic.Title)
		fmt.Println(res.Topic.Description)
		table := cli.NewTable(os.Stdout, "Item", "Detail")
		for _, item := range res.Topic.Items {
			table.Append([]string{item.Name, item.Detail})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
