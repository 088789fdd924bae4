package capture

import (
	"fmt"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Deletes a stored capture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		if err := rpc.DeleteCapture(client, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	cmd.AddCommand(rmCmd)
}
