package flags

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

func AddDebugFlag(cmd *cobra.Command) {
	usage := "If set, writes a game log to bricks.log in the config directory."
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, usage)
	cmd.PersistentFlags().MarkHidden("debug")
}

func Debug() bool {
	return debugFlag
}
