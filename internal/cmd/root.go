package cmd

import (
	_ "embed"
	"os"

	"github.com/retrobricks/bricks-cli/internal/flags"
	"github.com/spf13/cobra"
)

//go:embed version.txt
var version string

var rootCmd = &cobra.Command{
	Use:     "bricks",
	Version: version,
	Long:    "Bricks, a falling-block puzzle for your terminal",
}

func init() {
	flags.AddDebugFlag(rootCmd)
	if err := flags.AddConfigPathFlag(rootCmd); err != nil {
		panic(err)
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
