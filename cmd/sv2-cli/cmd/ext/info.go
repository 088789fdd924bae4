package ext

import (
	"fmt"
	"os"
	"strings"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <extension-type>",
	Short: "Returns detailed information about an extension.",
	Long: `Returns detailed information about an extension. The extension type may be
given in decimal or as 0x-prefixed hex.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		extType, err := cli.ParseUint16(args[0])
		if err != nil {
			return err
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		info, err := rpc.GetExtensionInfo(client, extType)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, info)
		}

		table := cli.NewKVTable(os.Stdout)
		table.Append([]string{"Type", cli.Hex16(info.ExtensionType)})
		table.Append([]string{"Name", info.Name})
		table.Append([]string{"Description", info.Description})
		table.Append([]string{"Negotiation Required", cli.BoolToStr(info.NegotiationRequired)})
		table.Append([]string{"Messages", strings.Join(info.Messages, ", ")})
		table.Render()
		if info.Detail != "" {
			fmt.Println(info.Detail)
		}

		if len(info.TLVFields) == 0 {
			return nil
		}
		fields := cli.NewTable(os.Stdout, "Field", "Name", "Data Type", "Max Length", "Description")
		for _, f := range info.TLVFields {
			fields.Append([]string{
				cli.Hex8(f.FieldType),
				f.Name,
				f.DataType,
				cli.Itoa(f.MaxLength),
				f.Description,
			})
		}
		fields.Render()
		return nil
	},
}

func init() {
	cmd.AddCommand(infoCmd)
}
