package capture

import (
	"encoding/hex"
	"time"

	"sv2/rpc"

	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "capture",
	Short: "Commands for storing and re-inspecting named TLV buffers.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

type captureJSON struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Data        string `json:"data"`
	CreatedAt   string `json:"created_at"`
	FieldCount  int    `json:"field_count"`
	FullyParsed bool   `json:"fully_parsed"`
}

func toCaptureJSON(c *rpc.Capture) *captureJSON {
	return &captureJSON{
		Name:        c.Name,
		ID:          c.ID,
		Data:        hex.EncodeToString(c.Data),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		FieldCount:  c.FieldCount,
		FullyParsed: c.FullyParsed,
	}
}
