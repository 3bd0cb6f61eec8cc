// Package render adapts plate grids to presentation surfaces: plain-text
// tables and xlsx worksheets.
package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/GWCustom/plotly-plate/pkg/plate"
)

// WriteTable renders the grid as a text table, one table row per plate
// row with the row letters in the leading column. Occupied wells show
// their overlay text when set, otherwise the numeric value, otherwise
// the color.
func WriteTable(w io.Writer, g *plate.Grid) {
	t := tablewriter.NewWriter(w)
	header := make([]string, g.Columns()+1)
	for c := 1; c <= g.Columns(); c++ {
		header[c] = strconv.Itoa(c)
	}
	t.SetHeader(header)

	rows := make([][]string, g.Rows())
	for r, label := range plate.RowLabels(g.Rows()) {
		rows[r] = make([]string, g.Columns()+1)
		rows[r][0] = label
	}
	for c := range g.Cells() {
		rows[c.Row][c.Col+1] = cellText(c.Record)
	}
	for _, row := range rows {
		t.Append(row)
	}
	t.Render()
}

func cellText(rec plate.Record) string {
	if rec.Text != "" {
		return rec.Text
	}
	if rec.Value != nil {
		return strconv.FormatFloat(*rec.Value, 'g', -1, 64)
	}
	if rec.Color != "" {
		return rec.Color
	}
	return "x"
}
