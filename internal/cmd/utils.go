package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/retrobricks/bricks-cli/internal"
	"github.com/retrobricks/bricks-cli/internal/bricks"
	"github.com/rodaine/table"
)

func printTable(w io.Writer, header []string, data [][]string) {
	writer := tablewriter.NewWriter(w)

	writer.SetHeader(header)
	writer.SetHeaderLine(false)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetAutoFormatHeaders(true)

	writer.SetBorder(false)
	writer.SetAutoWrapText(false)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetColumnSeparator("  ")
	writer.SetNoWhiteSpace(true)
	writer.SetTablePadding("     ")

	writer.AppendBulk(data)

	writer.Render()
}

func printResult(w io.Writer, result *bricks.Result) {
	fmt.Fprintf(w, "Thanks for playing, %s!\n\n", internal.Emph(result.Name))

	tbl := table.New("STAT", "VALUE").WithWriter(w)
	columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	tbl.WithFirstColumnFormatter(columnFmt)

	tbl.AddRow("games", result.Games)
	tbl.AddRow("score", humanize.Comma(int64(result.Score)))
	tbl.AddRow("best score", humanize.Comma(int64(result.BestScore)))
	tbl.AddRow("ground height", result.GroundHeight)
	tbl.AddRow("pieces settled", result.Pieces)
	tbl.AddRow("played for", formatDuration(result.Duration))
	tbl.Print()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "less than a second"
	}
	return d.Round(time.Second).String()
}
