package tlv

import (
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <extension-type> <field-type> <value>",
	Short: "Checks a field value against the extension's rules.",
	Long: `Checks a field value against the extension's rules. Exits non-zero when the
value is invalid.`,
	Args: cobra.ExactArgs(3),
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

		res, err := rpc.ValidateTLVField(client, extType, fieldType, value)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			if err := cli.WriteJSON(os.Stdout, res); err != nil {
				return err
			}
		} else if res.Valid {
			table := cli.NewKVTable(os.Stdout)
			table.Append([]string{"Valid", cli.BoolToStr(true)})
			table.Append([]string{"Field", res.Info.FieldName})
			table.Append([]string{"Length", cli.Itoa(res.Info.CurrentLength) + " / " + cli.Itoa(res.Info.MaxLength)})
			table.Append([]string{"Encoding", string(res.Info.Encoding)})
			table.Render()
		}
		if !res.Valid {
			return errors.New(res.Error)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool(FlagHex, false, "Interpret the value as hex instead of text")
	cmd.AddCommand(validateCmd)
}
