// Package plate maps microplate well labels to grid coordinates and
// arranges per-well data onto rectangular grids for rendering.
package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRows is the row ceiling of the label encoding: "A" through "ZZ"
// covers 702 rows.
const MaxRows = 702

// ParseLabel converts a well label such as "A1" or "aa03" into zero-based
// row and column indices. Input is case-insensitive and leading zeros in
// the column part are accepted. Failures wrap ErrInvalidLabel.
func ParseLabel(label string) (row, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	letters, digits := s[:i], s[i:]
	switch {
	case letters == "":
		return 0, 0, fmt.Errorf("%w: %q has no row letters", ErrInvalidLabel, label)
	case len(letters) > 2:
		return 0, 0, fmt.Errorf("%w: %q row part %q exceeds two letters", ErrInvalidLabel, label, letters)
	case digits == "":
		return 0, 0, fmt.Errorf("%w: %q has no column number", ErrInvalidLabel, label)
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return 0, 0, fmt.Errorf("%w: %q column part %q is not a number", ErrInvalidLabel, label, digits)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q column part %q is not a number", ErrInvalidLabel, label, digits)
	}
	if n < 1 {
		return 0, 0, fmt.Errorf("%w: %q column number must be positive", ErrInvalidLabel, label)
	}
	// Bijective base-26: A..Z are digits 1..26 with no zero digit, so
	// "AA" follows "Z" as row 26 rather than aliasing row 0.
	r := 0
	for _, c := range letters {
		r = r*26 + int(c-'A') + 1
	}
	if r > MaxRows {
		return 0, 0, fmt.Errorf("%w: %q row %q is past %q", ErrInvalidLabel, label, letters, "ZZ")
	}
	return r - 1, n - 1, nil
}

// FormatLabel is the inverse of ParseLabel, producing the canonical label
// (uppercase letters, no leading zeros) for zero-based row and column
// indices.
func FormatLabel(row, col int) (string, error) {
	if row < 0 || row >= MaxRows {
		return "", fmt.Errorf("%w: row %d outside [0, %d]", ErrOutOfBounds, row, MaxRows-1)
	}
	if col < 0 {
		return "", fmt.Errorf("%w: column %d is negative", ErrOutOfBounds, col)
	}
	return rowLetters(row) + strconv.Itoa(col+1), nil
}

// rowLetters encodes a zero-based row index as its bijective base-26
// letter group.
func rowLetters(row int) string {
	n := row + 1
	var s string
	for n > 0 {
		s = string(rune('A'+(n-1)%26)) + s
		n = (n - 1) / 26
	}
	return s
}

// RowLabels returns the ordered row letter groups for the first n rows,
// "A", "B", .., "Z", "AA", .., "ZZ". n is clamped to [0, MaxRows].
func RowLabels(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > MaxRows {
		n = MaxRows
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = rowLetters(i)
	}
	return labels
}
