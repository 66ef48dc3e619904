package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"narya/internal"
)

// renderSummaryTable renders the per-extension outcome counts of a run.
func renderSummaryTable(rows []internal.ExtSummary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Ext", "Files", "Renamed", "No-op", "Conflicts", "Errors"})

	totals := internal.ExtSummary{}
	for _, r := range rows {
		tw.AppendRow(table.Row{
			r.Ext,
			strconv.Itoa(r.Files),
			strconv.Itoa(r.Renamed),
			strconv.Itoa(r.Unchanged),
			strconv.Itoa(r.Conflicts),
			strconv.Itoa(r.Errors),
		})
		totals.Files += r.Files
		totals.Renamed += r.Renamed
		totals.Unchanged += r.Unchanged
		totals.Conflicts += r.Conflicts
		totals.Errors += r.Errors
	}
	tw.AppendFooter(table.Row{
		"total",
		strconv.Itoa(totals.Files),
		strconv.Itoa(totals.Renamed),
		strconv.Itoa(totals.Unchanged),
		strconv.Itoa(totals.Conflicts),
		strconv.Itoa(totals.Errors),
	})

	configs := make([]table.ColumnConfig, 0, 6)
	for i := 2; i <= 6; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
