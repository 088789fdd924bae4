package ext

import (
	"os"
	"strings"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the supported protocol extensions.",
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

		exts, err := rpc.ListExtensions(client)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, exts)
		}

		table := cli.NewTable(os.Stdout, "Type", "Name", "Negotiation", "Messages", "TLV Fields")
		for _, e := range exts {
			fields := make([]string, len(e.TLVFields))
			for i, f := range e.TLVFields {
				fields[i] = f.Name
			}
			table.Append([]string{
				cli.Hex16(e.ExtensionType),
				e.Name,
				cli.BoolToStr(e.NegotiationRequired),
				strings.Join(e.Messages, ", "),
				strings.Join(fields, ", "),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	cmd.AddCommand(listCmd)
}
