package capture

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <name> [hex]",
	Short: "Stores a hex-encoded TLV buffer under a name.",
	Long: `Stores a hex-encoded TLV buffer under a name, replacing any capture with the
same name. When the hex argument is omitted the buffer is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		data, err := cli.ReadHexArg(args, 1)
		if err != nil {
			return err
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		c, err := rpc.SaveCapture(client, args[0], data)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, toCaptureJSON(c))
		}
		fmt.Printf("Success. ID: %s\n", c.ID)
		return nil
	},
}

func init() {
	cmd.AddCommand(saveCmd)
}
