package plate

import (
	"errors"
	"fmt"
)

// ErrInvalidLabel indicates a malformed or out-of-range well label.
var ErrInvalidLabel = errors.New("invalid well label")

// ErrInvalidDimensions indicates non-positive or excessive grid dimensions.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrOutOfBounds indicates a well or index outside the declared grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// ErrLengthMismatch indicates parallel input lists of unequal length.
var ErrLengthMismatch = errors.New("input lists have mismatched lengths")

// ErrCapacityExceeded indicates more input elements than grid cells.
var ErrCapacityExceeded = errors.New("input exceeds grid capacity")

// ErrInvalidFillDirection indicates an unrecognized fill-direction token.
var ErrInvalidFillDirection = errors.New("invalid fill direction")

// IngestError represents a grid construction failure.
type IngestError struct {
	Source string // "values", "mapping", "records"
	Well   string // offending well label, if any
	Err    error
}

func (e *IngestError) Error() string {
	if e.Well == "" {
		return fmt.Sprintf("ingest from %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("ingest from %s: well %q: %v", e.Source, e.Well, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
