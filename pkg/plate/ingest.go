package plate

import "fmt"

// FillDirection selects how a flat value list maps onto grid positions.
type FillDirection string

const (
	// FillHorizontal fills row-major: left to right, then top to bottom.
	FillHorizontal FillDirection = "horizontal"
	// FillVertical fills column-major: top to bottom, then left to right.
	FillVertical FillDirection = "vertical"
)

// ValuesOptions configures FromValues.
type ValuesOptions struct {
	// Colors is an optional list parallel to the values. When nil the
	// records carry no color and the renderer derives colors from the
	// value scale.
	Colors []string
	// Text is an optional list of overlay labels parallel to the values.
	Text []string
	// Fill is the fill direction; empty defaults to FillHorizontal.
	Fill FillDirection
}

// FromValues builds a grid from parallel per-well lists, placing element
// i at the i-th cell along the fill direction.
func FromValues(nRows, nCols int, values []float64, opts ValuesOptions) (*Grid, error) {
	fill := opts.Fill
	if fill == "" {
		fill = FillHorizontal
	}
	if fill != FillHorizontal && fill != FillVertical {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFillDirection, opts.Fill)
	}
	if opts.Colors != nil && len(opts.Colors) != len(values) {
		return nil, fmt.Errorf("%w: %d values but %d colors", ErrLengthMismatch, len(values), len(opts.Colors))
	}
	if opts.Text != nil && len(opts.Text) != len(values) {
		return nil, fmt.Errorf("%w: %d values but %d text labels", ErrLengthMismatch, len(values), len(opts.Text))
	}
	g, err := New(nRows, nCols)
	if err != nil {
		return nil, err
	}
	if len(values) > nRows*nCols {
		return nil, fmt.Errorf("%w: %d values for %d wells", ErrCapacityExceeded, len(values), nRows*nCols)
	}
	for i, v := range values {
		rec := Record{Value: &v}
		if opts.Colors != nil {
			rec.Color = opts.Colors[i]
		}
		if opts.Text != nil {
			rec.Text = opts.Text[i]
		}
		var row, col int
		if fill == FillHorizontal {
			row, col = i/nCols, i%nCols
		} else {
			row, col = i%nRows, i/nRows
		}
		if err := g.Set(row, col, rec); err != nil {
			return nil, &IngestError{Source: "values", Err: err}
		}
	}
	return g, nil
}

// FromMapping builds a grid from a well-label keyed mapping. Labels are
// parsed once at ingestion; keys that normalize to the same well
// overwrite each other in map iteration order.
func FromMapping(nRows, nCols int, wells map[string]Record) (*Grid, error) {
	g, err := New(nRows, nCols)
	if err != nil {
		return nil, err
	}
	for label, rec := range wells {
		if err := setLabeled(g, label, rec); err != nil {
			return nil, &IngestError{Source: "mapping", Well: label, Err: err}
		}
	}
	return g, nil
}

// FromRecords builds a grid from a list of labeled records. The last
// occurrence of a well wins.
func FromRecords(nRows, nCols int, records []WellRecord) (*Grid, error) {
	g, err := New(nRows, nCols)
	if err != nil {
		return nil, err
	}
	for _, wr := range records {
		if err := setLabeled(g, wr.Well, wr.Record); err != nil {
			return nil, &IngestError{Source: "records", Well: wr.Well, Err: err}
		}
	}
	return g, nil
}

func setLabeled(g *Grid, label string, rec Record) error {
	row, col, err := ParseLabel(label)
	if err != nil {
		return err
	}
	return g.Set(row, col, rec)
}
