package protocol

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "protocol",
	Short: "Commands related to the Stratum V2 protocol definition.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
