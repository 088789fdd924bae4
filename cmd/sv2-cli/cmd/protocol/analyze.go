package protocol

import (
	"fmt"
	"os"
	"strings"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Returns the protocol version, core message types, extensions and security features.",
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

		spec, err := rpc.AnalyzeProtocol(client)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, spec)
		}

		fmt.Printf("Stratum V2 %s\n", spec.Version)
		fmt.Println(spec.Description)
		fmt.Println("")

		for _, mt := range spec.MessageTypes {
			fmt.Printf("%s (%s)\n", mt.Name, mt.Direction)
			fmt.Println(mt.Description)
			table := cli.NewTable(os.Stdout, "Field", "Type", "Required", "Description")
			for _, f := range mt.Fields {
				table.Append([]string{f.Name, f.FieldType, cli.BoolToStr(f.Required), f.Description})
			}
			table.Render()
			fmt.Println("")
		}

		table := cli.NewTable(os.Stdout, "Extension", "Name", "Description")
		for _, ext := range spec.Extensions {
			table.Append([]string{cli.Hex16(ext.ExtensionType), ext.Name, ext.Description})
		}
		table.Render()
		fmt.Println("")

		fmt.Println("Security features:")
		fmt.Printf("  - %s\n", strings.Join(spec.SecurityFeatures, "\n  - "))
		return nil
	},
}

func init() {
	cmd.AddCommand(analyzeCmd)
}
