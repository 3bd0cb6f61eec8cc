package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/GWCustom/plotly-plate/pkg/plate"
)

const defaultSheet = "Sheet1"

// WritePlate renders the grid onto a worksheet laid out like the physical
// plate: column numbers across row 1, row letters down column A, one
// sheet cell per well offset by those headers. Wells show their value
// when present, otherwise their overlay text; hex record colors become
// cell fills.
func WritePlate(g *plate.Grid, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if sheet == "" {
		sheet = defaultSheet
	} else if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, err
		}
	}

	for c := 0; c < g.Columns(); c++ {
		name, err := excelize.CoordinatesToCellName(c+2, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, name, c+1); err != nil {
			return nil, err
		}
	}
	for r, label := range plate.RowLabels(g.Rows()) {
		name, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, name, label); err != nil {
			return nil, err
		}
	}

	for cell := range g.Cells() {
		name, err := excelize.CoordinatesToCellName(cell.Col+2, cell.Row+2)
		if err != nil {
			return nil, err
		}
		switch {
		case cell.Record.Value != nil:
			err = f.SetCellValue(sheet, name, *cell.Record.Value)
		case cell.Record.Text != "":
			err = f.SetCellValue(sheet, name, cell.Record.Text)
		}
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(cell.Record.Color, "#") {
			styleID, err := f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Color: []string{cell.Record.Color}, Pattern: 1},
			})
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, name, name, styleID); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// ReadRecords ingests a tabular sheet into labeled records ready for
// plate.FromRecords. The header row names the columns; "well" is
// required, "value", "color", and "text" are optional, all matched
// case-insensitively. Rows with an empty well cell are skipped.
func ReadRecords(f *excelize.File, sheet string) ([]plate.WellRecord, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	colIdx := make(map[string]int)
	for i, h := range rows[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	wellCol, ok := colIdx["well"]
	if !ok {
		return nil, fmt.Errorf("sheet %q has no %q column", sheet, "well")
	}

	var out []plate.WellRecord
	for _, row := range rows[1:] {
		field := func(name string) string {
			i, ok := colIdx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		var well string
		if wellCol < len(row) {
			well = strings.TrimSpace(row[wellCol])
		}
		if well == "" {
			continue
		}
		wr := plate.WellRecord{Well: well}
		if s := field("value"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("well %q: value %q is not numeric", well, s)
			}
			wr.Value = &v
		}
		wr.Color = field("color")
		wr.Text = field("text")
		out = append(out, wr)
	}
	return out, nil
}
