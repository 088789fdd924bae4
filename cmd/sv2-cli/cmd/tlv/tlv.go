package tlv

import (
	"encoding/hex"
	"io"
	"unicode/utf8"

	"sv2/cli"
	sv2tlv "sv2/tlv"

	"github.com/spf13/cobra"
)

const (
	FlagHex = "hex"
)

var cmd = &cobra.Command{
	Use:   "tlv",
	Short: "Commands for encoding, parsing and validating TLV extension fields.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

type fieldJSON struct {
	ExtensionType uint16 `json:"extension_type"`
	FieldType     uint8  `json:"field_type"`
	Length        uint16 `json:"length"`
	Value         string `json:"value"`
}

func toFieldJSON(f sv2tlv.Field) *fieldJSON {
	return &fieldJSON{
		ExtensionType: f.ExtensionType(),
		FieldType:     f.FieldType(),
		Length:        f.Length(),
		Value:         hex.EncodeToString(f.Value()),
	}
}

// readValue interprets a command-line value as text, or as hex when --hex is
// set.
func readValue(cmd *cobra.Command, arg string) ([]byte, error) {
	asHex, _ := cmd.Flags().GetBool(FlagHex)
	if asHex {
		return cli.ParseHex(arg)
	}
	return []byte(arg), nil
}

func printableValue(value []byte) string {
	if utf8.Valid(value) {
		return string(value)
	}
	return "0x" + hex.EncodeToString(value)
}

func renderFields(w io.Writer, fields []sv2tlv.Field) {
	table := cli.NewTable(w, "Extension", "Field", "Length", "Value")
	for _, f := range fields {
		table.Append([]string{
			cli.Hex16(f.ExtensionType()),
			cli.Hex8(f.FieldType()),
			cli.Itoa(int(f.Length())),
			printableValue(f.Value()),
		})
	}
	table.Render()
}
