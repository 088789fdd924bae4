package ext

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "ext",
	Short: "Commands related to Stratum V2 protocol extensions.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
