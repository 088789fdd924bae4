package capture

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <start?>",
	Short: "Lists stored captures in name order.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		var start string
		if len(args) == 1 {
			start = args[0]
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		captures, err := rpc.ListCaptures(client, start)
		if err != nil {
			return err
		}

		if format == cli.FormatJSON {
			encoder := json.NewEncoder(os.Stdout)
			for _, c := range captures {
				if err := encoder.Encode(toCaptureJSON(c)); err != nil {
					return err
				}
			}
			return nil
		}

		table := cli.NewTable(os.Stdout, "Name", "ID", "Size", "Fields", "Fully Parsed", "Created At")
		for _, c := range captures {
			table.Append([]string{
				c.Name,
				c.ID,
				cli.Itoa(len(c.Data)),
				cli.Itoa(c.FieldCount),
				cli.BoolToStr(c.FullyParsed),
				c.CreatedAt.Format(time.RFC3339),
			})
		}
		table.Render()
		fmt.Println("")
		fmt.Printf("Total: %d\n", len(captures))
		return nil
	},
}

func init() {
	cmd.AddCommand(listCmd)
}
