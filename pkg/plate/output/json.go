// Package output serializes plate grids for downstream consumers.
package output

import (
	"encoding/json"
	"strconv"

	"github.com/GWCustom/plotly-plate/pkg/plate"
)

// FigureData is the rectangular form a heatmap or scatter renderer
// consumes: matrices indexed [row][column] with nil or empty entries for
// unoccupied wells.
type FigureData struct {
	// RowLabels are the row letter groups, top to bottom.
	RowLabels []string `json:"row_labels"`
	// ColumnLabels are the 1-based column numbers as strings.
	ColumnLabels []string `json:"column_labels"`
	// Values holds the numeric reading per well, null when absent.
	Values [][]*float64 `json:"values"`
	// Colors holds the per-well color, empty when the renderer should
	// derive it from the value scale.
	Colors [][]string `json:"colors"`
	// Text holds the per-well overlay label.
	Text [][]string `json:"text"`
}

// BuildFigure arranges the grid into renderer-ready matrices.
func BuildFigure(g *plate.Grid) *FigureData {
	fd := &FigureData{
		RowLabels:    plate.RowLabels(g.Rows()),
		ColumnLabels: make([]string, g.Columns()),
		Values:       make([][]*float64, g.Rows()),
		Colors:       make([][]string, g.Rows()),
		Text:         make([][]string, g.Rows()),
	}
	for c := range fd.ColumnLabels {
		fd.ColumnLabels[c] = strconv.Itoa(c + 1)
	}
	for r := range fd.Values {
		fd.Values[r] = make([]*float64, g.Columns())
		fd.Colors[r] = make([]string, g.Columns())
		fd.Text[r] = make([]string, g.Columns())
	}
	for cell := range g.Cells() {
		fd.Values[cell.Row][cell.Col] = cell.Record.Value
		fd.Colors[cell.Row][cell.Col] = cell.Record.Color
		fd.Text[cell.Row][cell.Col] = cell.Record.Text
	}
	return fd
}

// ToJSON serializes v to JSON, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
