package plate

import (
	"fmt"
	"iter"

	deepcopy "github.com/tiendc/go-deepcopy"
)

// Record is the payload attached to one well. All fields are optional; a
// zero Record still marks its well occupied.
type Record struct {
	// Value is the numeric reading for the well.
	Value *float64 `json:"value,omitempty"`
	// Color is a named, hex, or rgba color for the well marker.
	Color string `json:"color,omitempty"`
	// Text is an overlay label drawn on the well.
	Text string `json:"text,omitempty"`
}

// WellRecord is a Record tagged with its well label, the shape used by
// record-list ingestion and flattened export.
type WellRecord struct {
	// Well is the well label (canonical on export).
	Well string `json:"well"`
	Record
}

// Cell is one occupied grid position.
type Cell struct {
	Row    int
	Col    int
	Record Record
}

// Grid is a fixed-size plate indexed by zero-based (row, column). Records
// are stored densely in row-major order; a nil slot is an empty well.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	nRows int
	nCols int
	cells []*Record
}

// New creates an empty nRows by nCols grid.
func New(nRows, nCols int) (*Grid, error) {
	if nRows <= 0 || nCols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, nRows, nCols)
	}
	if nRows > MaxRows {
		return nil, fmt.Errorf("%w: %d rows exceeds the %d-row label ceiling", ErrInvalidDimensions, nRows, MaxRows)
	}
	return &Grid{nRows: nRows, nCols: nCols, cells: make([]*Record, nRows*nCols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.nRows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.nCols }

// Set places rec at (row, col), replacing any prior record there.
func (g *Grid) Set(row, col int, rec Record) error {
	if row < 0 || row >= g.nRows || col < 0 || col >= g.nCols {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfBounds, row, col, g.nRows, g.nCols)
	}
	g.cells[row*g.nCols+col] = &rec
	return nil
}

// Get returns the record at (row, col). The second result is false for
// empty wells and for positions outside the grid.
func (g *Grid) Get(row, col int) (Record, bool) {
	if row < 0 || row >= g.nRows || col < 0 || col >= g.nCols {
		return Record{}, false
	}
	if r := g.cells[row*g.nCols+col]; r != nil {
		return *r, true
	}
	return Record{}, false
}

// Len returns the number of occupied wells.
func (g *Grid) Len() int {
	n := 0
	for _, r := range g.cells {
		if r != nil {
			n++
		}
	}
	return n
}

// Cells iterates over occupied cells in row-major order (row ascending,
// then column ascending). The sequence is restartable: each range starts
// over from the first occupied cell.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, r := range g.cells {
			if r == nil {
				continue
			}
			if !yield(Cell{Row: i / g.nCols, Col: i % g.nCols, Record: *r}) {
				return
			}
		}
	}
}

// Clone returns an independently owned deep copy of the grid and its
// records.
func (g *Grid) Clone() *Grid {
	dup := &Grid{nRows: g.nRows, nCols: g.nCols}
	if err := deepcopy.Copy(&dup.cells, g.cells); err != nil {
		// cells hold only plain data, so a copy failure is a programming error
		panic(err)
	}
	return dup
}
