package plate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromValuesHorizontal(t *testing.T) {
	g, err := FromValues(3, 3, []float64{0, 1, 2}, ValuesOptions{Fill: FillHorizontal})
	require.NoError(t, err)

	for i, pos := range [][2]int{{0, 0}, {0, 1}, {0, 2}} {
		rec, ok := g.Get(pos[0], pos[1])
		require.True(t, ok, "position %v", pos)
		assert.Equal(t, float64(i), *rec.Value)
	}
	assert.Equal(t, 3, g.Len())
}

func TestFromValuesVertical(t *testing.T) {
	g, err := FromValues(3, 3, []float64{0, 1, 2}, ValuesOptions{Fill: FillVertical})
	require.NoError(t, err)

	for i, pos := range [][2]int{{0, 0}, {1, 0}, {2, 0}} {
		rec, ok := g.Get(pos[0], pos[1])
		require.True(t, ok, "position %v", pos)
		assert.Equal(t, float64(i), *rec.Value)
	}
}

func TestFromValuesWrapsRows(t *testing.T) {
	// a fourth value wraps to the next row (horizontal) or column (vertical)
	g, err := FromValues(3, 3, []float64{0, 1, 2, 3}, ValuesOptions{})
	require.NoError(t, err)
	rec, ok := g.Get(1, 0)
	require.True(t, ok)
	assert.Equal(t, 3.0, *rec.Value)

	g, err = FromValues(3, 3, []float64{0, 1, 2, 3}, ValuesOptions{Fill: FillVertical})
	require.NoError(t, err)
	rec, ok = g.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, *rec.Value)
}

func TestFromValuesDefaultsHorizontal(t *testing.T) {
	g, err := FromValues(2, 2, []float64{0, 1}, ValuesOptions{})
	require.NoError(t, err)
	_, ok := g.Get(0, 1)
	assert.True(t, ok)
}

func TestFromValuesInvalidFill(t *testing.T) {
	_, err := FromValues(2, 2, []float64{0}, ValuesOptions{Fill: "diagonal"})
	assert.ErrorIs(t, err, ErrInvalidFillDirection)
}

func TestFromValuesParallel(t *testing.T) {
	g, err := FromValues(2, 2, []float64{1, 2}, ValuesOptions{
		Colors: []string{"red", "#00ff00"},
		Text:   []string{"a", "b"},
	})
	require.NoError(t, err)

	rec, ok := g.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, *rec.Value)
	assert.Equal(t, "#00ff00", rec.Color)
	assert.Equal(t, "b", rec.Text)
}

func TestFromValuesOmittedColors(t *testing.T) {
	// without a colors list the records carry no color; the renderer
	// derives colors from the value scale
	g, err := FromValues(2, 2, []float64{1}, ValuesOptions{})
	require.NoError(t, err)
	rec, ok := g.Get(0, 0)
	require.True(t, ok)
	assert.Empty(t, rec.Color)
}

func TestFromValuesLengthMismatch(t *testing.T) {
	_, err := FromValues(2, 2, []float64{1, 2}, ValuesOptions{Colors: []string{"red"}})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = FromValues(2, 2, []float64{1, 2}, ValuesOptions{Text: []string{"a", "b", "c"}})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFromValuesCapacity(t *testing.T) {
	values := make([]float64, 97)
	_, err := FromValues(8, 12, values, ValuesOptions{})
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	values = values[:96]
	_, err = FromValues(8, 12, values, ValuesOptions{})
	assert.NoError(t, err)
}

func TestFromMapping(t *testing.T) {
	g, err := FromMapping(8, 12, map[string]Record{
		"A1":  {Value: float(1)},
		"b02": {Color: "blue"},
		"H12": {Text: "ctl"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())

	rec, ok := g.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, "blue", rec.Color)
}

func TestFromMappingInvalidLabel(t *testing.T) {
	_, err := FromMapping(8, 12, map[string]Record{"1A": {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabel)

	var ingestErr *IngestError
	require.True(t, errors.As(err, &ingestErr))
	assert.Equal(t, "mapping", ingestErr.Source)
	assert.Equal(t, "1A", ingestErr.Well)
}

func TestFromMappingOutOfBounds(t *testing.T) {
	// I1 is row 8, one past an 8-row plate
	_, err := FromMapping(8, 12, map[string]Record{"I1": {}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = FromMapping(8, 12, map[string]Record{"A13": {}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFromRecords(t *testing.T) {
	g, err := FromRecords(8, 12, []WellRecord{
		{Well: "A1", Record: Record{Value: float(1)}},
		{Well: "B2", Record: Record{Value: float(2), Text: "s2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

func TestFromRecordsDuplicateLastWins(t *testing.T) {
	g, err := FromRecords(8, 12, []WellRecord{
		{Well: "A01", Record: Record{Value: float(1)}},
		{Well: "A1", Record: Record{Value: float(2)}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	rec, ok := g.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, 2.0, *rec.Value)
}

func TestFromRecordsInvalidLabel(t *testing.T) {
	_, err := FromRecords(8, 12, []WellRecord{{Well: "AAA1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLabel)

	var ingestErr *IngestError
	require.True(t, errors.As(err, &ingestErr))
	assert.Equal(t, "records", ingestErr.Source)
}

func TestIngestBadDimensions(t *testing.T) {
	_, err := FromValues(0, 12, nil, ValuesOptions{})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromMapping(MaxRows+1, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = FromRecords(8, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
