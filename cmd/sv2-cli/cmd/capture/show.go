package capture

import (
	"encoding/hex"
	"os"
	"time"

	"sv2/cli"
	"sv2/cmd/sv2-cli/cmd/tlv"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

type showJSON struct {
	Capture *captureJSON   `json:"capture"`
	Parse   *tlv.ParseJSON `json:"parse"`
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Shows a stored capture along with its decoded fields.",
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

		c, parse, err := rpc.GetCapture(client, args[0])
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, &showJSON{
				Capture: toCaptureJSON(c),
				Parse:   tlv.NewParseJSON(parse),
			})
		}

		table := cli.NewKVTable(os.Stdout)
		table.Append([]string{"Name", c.Name})
		table.Append([]string{"ID", c.ID})
		table.Append([]string{"Created At", c.CreatedAt.Format(time.RFC3339)})
		table.Append([]string{"Size", cli.Itoa(len(c.Data))})
		table.Append([]string{"Data", hex.EncodeToString(c.Data)})
		table.Render()
		tlv.PrintParseResult(parse)
		return nil
	},
}

func init() {
	cmd.AddCommand(showCmd)
}
