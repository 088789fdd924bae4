package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetFormat returns the output format requested via --format.
func GetFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString(FlagFormat)
	if err != nil {
		return "", err
	}
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", errors.Errorf("invalid output format %q, must be %s or %s", format, FormatText, FormatJSON)
	}
}

func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// NewKVTable returns a two-column table for key/value listings.
func NewKVTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func NewTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

func BoolToStr(val bool) string {
	if val {
		return "TRUE"
	}
	return "FALSE"
}

func Hex16(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}

func Hex8(v uint8) string {
	return fmt.Sprintf("0x%02x", v)
}

func Itoa(v int) string {
	return strconv.Itoa(v)
}
