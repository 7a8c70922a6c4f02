package compare

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coord struct {
	row, col int
}

// memSheet is an in-memory Sheet for engine tests.
type memSheet struct {
	cells       map[coord]Value
	maxRow      int
	maxCol      int
	readErrs    map[coord]error
	writeErrs   map[coord]error
	highlighted map[coord]bool
}

func newMemSheet(maxRow, maxCol int) *memSheet {
	return &memSheet{
		cells:       make(map[coord]Value),
		maxRow:      maxRow,
		maxCol:      maxCol,
		readErrs:    make(map[coord]error),
		writeErrs:   make(map[coord]error),
		highlighted: make(map[coord]bool),
	}
}

func (s *memSheet) set(row, col int, v Value) *memSheet {
	s.cells[coord{row, col}] = v
	return s
}

func (s *memSheet) MaxRow() int { return s.maxRow }
func (s *memSheet) MaxCol() int { return s.maxCol }

func (s *memSheet) Value(row, col int) (Value, error) {
	if err := s.readErrs[coord{row, col}]; err != nil {
		return Value{}, err
	}
	return s.cells[coord{row, col}], nil
}

func (s *memSheet) SetValue(row, col int, v Value) error {
	if err := s.writeErrs[coord{row, col}]; err != nil {
		return err
	}
	s.cells[coord{row, col}] = v
	return nil
}

func (s *memSheet) Highlight(row, col int) error {
	s.highlighted[coord{row, col}] = true
	return nil
}

func testEngine() *Engine {
	return NewEngine(nil, DefaultOptions(), zerolog.Nop())
}

func TestCompareSheetCountsEveryCoordinate(t *testing.T) {
	newSheet := newMemSheet(3, 2).set(1, 1, NumberValue(1))
	prevSheet := newMemSheet(3, 2).set(1, 1, NumberValue(1))
	out := newMemSheet(3, 2)

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	assert.Equal(t, 6, res.CellsCompared)
	assert.Equal(t, 0, res.DifferencesCount)
	assert.False(t, res.DifferencesFound)
	assert.Empty(t, out.highlighted)
}

func TestCompareSheetUnionExtent(t *testing.T) {
	// new has more rows, prev has more columns: the union box is
	// maximized in both dimensions independently.
	newSheet := newMemSheet(4, 2)
	prevSheet := newMemSheet(2, 5)
	out := newMemSheet(4, 5)

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	assert.Equal(t, 4*5, res.CellsCompared)
}

func TestCompareSheetRecordsAndWritesDifferences(t *testing.T) {
	newSheet := newMemSheet(2, 2).
		set(1, 1, NumberValue(10)).
		set(1, 2, TextValue("Review")).
		set(2, 1, NumberValue(5))
	prevSheet := newMemSheet(2, 2).
		set(1, 1, NumberValue(7)).
		set(1, 2, TextValue("Active")).
		set(2, 1, NumberValue(5))
	out := newMemSheet(2, 2)

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	assert.Equal(t, 2, res.DifferencesCount)
	assert.Equal(t, 1, res.NumericDifferences)
	assert.Equal(t, 1, res.TextDifferences)
	assert.True(t, res.DifferencesFound)
	assert.Equal(t, res.DifferencesCount, res.NumericDifferences+res.TextDifferences)

	delta, err := out.Value(1, 1)
	require.NoError(t, err)
	assert.Equal(t, NumberValue(3), delta)

	text, err := out.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, TextValue("Review"), text)

	assert.True(t, out.highlighted[coord{1, 1}])
	assert.True(t, out.highlighted[coord{1, 2}])
	assert.False(t, out.highlighted[coord{2, 1}])
}

func TestCompareSheetMissingRowTreatedAsEmpty(t *testing.T) {
	// prev is one row shorter; every populated cell in new's extra row
	// is a difference, not a skip.
	newSheet := newMemSheet(4, 4).
		set(4, 1, TextValue("Eve")).
		set(4, 2, NumberValue(31))
	prevSheet := newMemSheet(3, 4)
	out := newMemSheet(4, 4)

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	assert.Equal(t, 16, res.CellsCompared)
	assert.Equal(t, 2, res.DifferencesCount)
	assert.Equal(t, 1, res.NumericDifferences)
	assert.Equal(t, 1, res.TextDifferences)
}

func TestCompareSheetCellFailureSkipsCoordinate(t *testing.T) {
	newSheet := newMemSheet(1, 3).
		set(1, 1, NumberValue(10)).
		set(1, 2, NumberValue(20)).
		set(1, 3, NumberValue(30))
	prevSheet := newMemSheet(1, 3).
		set(1, 1, NumberValue(1)).
		set(1, 2, NumberValue(2)).
		set(1, 3, NumberValue(3))
	newSheet.readErrs[coord{1, 2}] = errors.New("corrupt cell")
	out := newMemSheet(1, 3)

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	// The failed coordinate touches no counters; traversal continues.
	assert.Equal(t, 2, res.CellsCompared)
	assert.Equal(t, 2, res.DifferencesCount)
	assert.Equal(t, 2, res.NumericDifferences)
}

func TestCompareSheetWriteFailureSkipsCounters(t *testing.T) {
	newSheet := newMemSheet(1, 2).
		set(1, 1, NumberValue(10)).
		set(1, 2, NumberValue(20))
	prevSheet := newMemSheet(1, 2).
		set(1, 1, NumberValue(1)).
		set(1, 2, NumberValue(2))
	out := newMemSheet(1, 2)
	out.writeErrs[coord{1, 1}] = errors.New("write refused")

	res := testEngine().CompareSheet(newSheet, prevSheet, out)

	assert.Equal(t, 2, res.CellsCompared)
	assert.Equal(t, 1, res.DifferencesCount)
	assert.False(t, out.highlighted[coord{1, 1}])
	assert.True(t, out.highlighted[coord{1, 2}])
}

func TestCompareSheetEmptySheets(t *testing.T) {
	res := testEngine().CompareSheet(newMemSheet(0, 0), newMemSheet(0, 0), newMemSheet(0, 0))

	assert.Equal(t, 0, res.CellsCompared)
	assert.False(t, res.DifferencesFound)
}
