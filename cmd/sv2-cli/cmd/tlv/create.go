package tlv

import (
	"encoding/hex"
	"fmt"
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

type createJSON struct {
	TLVField     *fieldJSON `json:"tlv_field"`
	EncodedBytes string     `json:"encoded_bytes"`
}

var createCmd = &cobra.Command{
	Use:   "create <extension-type> <field-type> <value>",
	Short: "Encodes a TLV field and prints its wire bytes as hex.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		extType, err := cli.ParseUint16(args[0])
		if err != nil {
			return err
		}
		fieldType, err := cli.ParseUint8(args[1])
		if err != nil {
			return err
		}
		value, err := readValue(cmd, args[2])
		if err != nil {
			return err
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		f, encoded, err := rpc.CreateTLVField(client, extType, fieldType, value)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, &createJSON{
				TLVField:     toFieldJSON(f),
				EncodedBytes: hex.EncodeToString(encoded),
			})
		}

		fmt.Println(f)
		fmt.Println(hex.EncodeToString(encoded))
		return nil
	},
}

func init() {
	createCmd.Flags().Bool(FlagHex, false, "Interpret the value as hex instead of text")
	cmd.AddCommand(createCmd)
}
