package cmd

import (
	"os"
	"strconv"
	"time"

	"sv2/cli"
	"sv2/rpc"

	"github.com/spf13/cobra"
)

type statusJSON struct {
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	UptimeMS        int64  `json:"uptime_ms"`
	RequestCount    uint64 `json:"request_count"`
	CaptureCount    int    `json:"capture_count"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Returns daemon status information.",
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

		res, err := rpc.GetStatus(client)
		if err != nil {
			return err
		}

		if format == cli.FormatJSON {
			return cli.WriteJSON(os.Stdout, &statusJSON{
				Version:         res.Version,
				ProtocolVersion: res.ProtocolVersion,
				UptimeMS:        int64(res.Uptime / time.Millisecond),
				RequestCount:    res.RequestCount,
				CaptureCount:    res.CaptureCount,
			})
		}

		table := cli.NewKVTable(os.Stdout)
		table.Append([]string{"Version", res.Version})
		table.Append([]string{"Protocol Version", res.ProtocolVersion})
		table.Append([]string{"Uptime", res.Uptime.Truncate(time.Second).String()})
		table.Append([]string{"Requests", strconv.FormatUint(res.RequestCount, 10)})
		table.Append([]string{"Captures", strconv.Itoa(res.CaptureCount)})
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
