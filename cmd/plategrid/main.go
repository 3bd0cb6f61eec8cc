// Package main provides the CLI entry point for plategrid.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/GWCustom/plotly-plate/pkg/plate"
	"github.com/GWCustom/plotly-plate/pkg/plate/output"
	"github.com/GWCustom/plotly-plate/pkg/plate/render"
)

var (
	outputPath string
	pretty     bool
	format     string
	nRows      int
	nCols      int
	sheet      string
	valuesCSV  string
	fill       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plategrid [input.json|input.xlsx]",
		Short: "Arrange per-well data onto a microplate grid",
		Long: `plategrid reads per-well data (a label-keyed JSON mapping, a JSON record
list, or a tabular xlsx sheet), validates it against a plate layout, and
emits the populated grid as mapping JSON, figure-data JSON, a text table,
or an xlsx worksheet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "mapping", "Output format: mapping, figure, table, xlsx")
	rootCmd.Flags().IntVar(&nRows, "rows", 8, "Number of plate rows")
	rootCmd.Flags().IntVar(&nCols, "cols", 12, "Number of plate columns")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx input and output")
	rootCmd.Flags().StringVar(&valuesCSV, "values", "", "Comma-separated values to fill instead of an input file")
	rootCmd.Flags().StringVar(&fill, "fill", "horizontal", "Fill direction for --values: horizontal, vertical")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	g, err := buildGrid(args)
	if err != nil {
		return err
	}
	return emit(g)
}

func buildGrid(args []string) (*plate.Grid, error) {
	if valuesCSV != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--values and an input file are mutually exclusive")
		}
		values, err := parseValuesList(valuesCSV)
		if err != nil {
			return nil, err
		}
		return plate.FromValues(nRows, nCols, values, plate.ValuesOptions{Fill: plate.FillDirection(fill)})
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("an input file or --values is required")
	}
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	if strings.EqualFold(filepath.Ext(inputPath), ".xlsx") {
		return gridFromWorkbook(inputPath)
	}
	return gridFromJSON(inputPath)
}

func gridFromWorkbook(path string) (*plate.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetList()[0]
	}
	records, err := render.ReadRecords(f, name)
	if err != nil {
		return nil, err
	}
	return plate.FromRecords(nRows, nCols, records)
}

func gridFromJSON(path string) (*plate.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []plate.WellRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid record list: %w", err)
		}
		return plate.FromRecords(nRows, nCols, records)
	}
	var wells map[string]plate.Record
	if err := json.Unmarshal(trimmed, &wells); err != nil {
		return nil, fmt.Errorf("invalid well mapping: %w", err)
	}
	return plate.FromMapping(nRows, nCols, wells)
}

func parseValuesList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q in --values", p)
		}
		values = append(values, v)
	}
	return values, nil
}

func emit(g *plate.Grid) error {
	switch format {
	case "mapping", "figure":
		var v any
		if format == "figure" {
			v = output.BuildFigure(g)
		} else {
			v = plate.ToMapping(g)
		}
		jsonData, err := output.ToJSON(v, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if outputPath != "" {
			return os.WriteFile(outputPath, jsonData, 0644)
		}
		fmt.Println(string(jsonData))
		return nil

	case "table":
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			render.WriteTable(f, g)
			return nil
		}
		render.WriteTable(os.Stdout, g)
		return nil

	case "xlsx":
		if outputPath == "" {
			return fmt.Errorf("--output is required for xlsx format")
		}
		f, err := render.WritePlate(g, sheet)
		if err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
		defer f.Close()
		return f.SaveAs(outputPath)

	default:
		return fmt.Errorf("invalid format: %s (must be mapping, figure, table, or xlsx)", format)
	}
}
