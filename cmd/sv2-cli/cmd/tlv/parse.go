package tlv

import (
	"fmt"
	"os"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

type ParseJSON struct {
	TLVFields          []*fieldJSON `json:"tlv_fields"`
	Errors             []string     `json:"errors"`
	ParsedSuccessfully bool         `json:"parsed_successfully"`
	TrailingBytes      int          `json:"trailing_bytes"`
}

func NewParseJSON(res *rpc.ParseResult) *ParseJSON {
	fields := make([]*fieldJSON, len(res.Fields))
	for i, f := range res.Fields {
		fields[i] = toFieldJSON(f)
	}
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return &ParseJSON{
		TLVFields:          fields,
		Errors:             errs,
		ParsedSuccessfully: res.ParsedSuccessfully,
		TrailingBytes:      res.TrailingBytes,
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse [hex]",
	Short: "Parses a hex-encoded buffer of consecutive TLV fields.",
	Long: `Parses a hex-encoded buffer of consecutive TLV fields. Whitespace in the
input is ignored. When no argument is given the buffer is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := cli.GetFormat(cmd)
		if err != nil {
			return err
		}
		data, err := cli.ReadHexArg(args, 0)
		if err != nil {
			return err
		}
		client, done, err := cli.DialClient(cmd)
		if err != nil {
			return err
		}
		defer done()

		res, err := rpc.ParseTLVFields(client, data)
		if err != nil {
			return err
		}
		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, NewParseJSON(res))
		}
		PrintParseResult(res)
		return nil
	},
}

// PrintParseResult renders a parse result as a table followed by any errors.
func PrintParseResult(res *rpc.ParseResult) {
	renderFields(os.Stdout, res.Fields)
	for _, e := range res.Errors {
		fmt.Printf("error: %s\n", e)
	}
	if res.TrailingBytes > 0 {
		fmt.Printf("ignored %d trailing bytes\n", res.TrailingBytes)
	}
	fmt.Printf("Parsed successfully: %s\n", cli.BoolToStr(res.ParsedSuccessfully))
}

func init() {
	cmd.AddCommand(parseCmd)
}
