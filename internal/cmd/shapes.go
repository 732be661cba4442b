package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retrobricks/bricks-cli/internal/bricks"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:               "shapes",
	Short:             "List the shapes that fall in the arena",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		printShapes(os.Stdout)
		return nil
	},
}

func printShapes(w io.Writer) {
	data := [][]string{}
	for _, kind := range bricks.Kinds() {
		data = append(data, []string{kind.String(), fmt.Sprint(kind.Width()), formatOffsets(kind.Offsets())})
	}
	printTable(w, []string{"shape", "width", "offsets"}, data)
}

func formatOffsets(offsets []bricks.Point) string {
	parts := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		parts = append(parts, fmt.Sprintf("(%d,%d)", offset.Row, offset.Col))
	}
	return strings.Join(parts, " ")
}
