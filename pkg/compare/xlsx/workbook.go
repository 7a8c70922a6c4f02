// Package xlsx adapts excelize workbooks to the compare capability
// surface: open, sheet grids, typed cell values, highlight styling,
// save, and close.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/py-simplified/comparison-tool/pkg/compare"
)

// Opener opens .xlsx files through excelize.
type Opener struct{}

// Open opens the workbook at path. The dataOnly flag is satisfied
// natively: excelize surfaces the last-computed cached value for
// formula cells, never formula text.
func (Opener) Open(path string, dataOnly bool) (compare.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &Workbook{f: f}, nil
}

// Workbook wraps an open excelize file.
type Workbook struct {
	f       *excelize.File
	styleID int
}

// SheetNames returns the workbook's sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Sheet returns the named sheet as a cell grid.
func (w *Workbook) Sheet(name string) (compare.Sheet, error) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", compare.ErrSheetNotFound, name)
	}

	// GetRows trims fully-empty trailing rows, which matches the
	// occupied-range semantics the traversal needs.
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, err
	}
	maxCol := 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}

	return &Sheet{
		wb:     w,
		name:   name,
		maxRow: len(rows),
		maxCol: maxCol,
	}, nil
}

// Save persists the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	return w.f.Save()
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// highlightStyle lazily registers the fixed changed-cell style: solid
// red fill with a bold white font.
func (w *Workbook) highlightStyle() (int, error) {
	if w.styleID != 0 {
		return w.styleID, nil
	}
	id, err := w.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FF0000"}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	})
	if err != nil {
		return 0, err
	}
	w.styleID = id
	return id, nil
}

// Sheet is one worksheet of an open workbook.
type Sheet struct {
	wb     *Workbook
	name   string
	maxRow int
	maxCol int
}

// MaxRow returns the highest occupied row, 0 for an empty sheet.
func (s *Sheet) MaxRow() int {
	return s.maxRow
}

// MaxCol returns the highest occupied column, 0 for an empty sheet.
func (s *Sheet) MaxCol() int {
	return s.maxCol
}

// Value reads the typed value at a 1-based coordinate. Number cells
// and booleans surface as numbers; strings stay text even when they
// look numeric, so strict equality can tell 5 from "5".
func (s *Sheet) Value(row, col int) (compare.Value, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return compare.Value{}, err
	}

	raw, err := s.wb.f.GetCellValue(s.name, cell)
	if err != nil {
		return compare.Value{}, err
	}
	if raw == "" {
		return compare.Empty(), nil
	}

	cellType, err := s.wb.f.GetCellType(s.name, cell)
	if err != nil {
		return compare.Value{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return compare.TextValue(raw), nil
	case excelize.CellTypeBool:
		if raw == "TRUE" {
			return compare.NumberValue(1), nil
		}
		return compare.NumberValue(0), nil
	}

	// Number cells carry no explicit type attribute in the container;
	// anything that parses is a native number, the rest (dates rendered
	// through a format, error literals) reads as text.
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return compare.NumberValue(num), nil
	}
	return compare.TextValue(raw), nil
}

// SetValue writes a value at a 1-based coordinate. Empty writes an
// empty string.
func (s *Sheet) SetValue(row, col int, v compare.Value) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	switch v.Kind {
	case compare.KindNumber:
		return s.wb.f.SetCellValue(s.name, cell, v.Number)
	case compare.KindText:
		return s.wb.f.SetCellValue(s.name, cell, v.Text)
	default:
		return s.wb.f.SetCellValue(s.name, cell, "")
	}
}

// Highlight applies the fixed changed-cell style at a coordinate.
func (s *Sheet) Highlight(row, col int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	styleID, err := s.wb.highlightStyle()
	if err != nil {
		return err
	}
	return s.wb.f.SetCellStyle(s.name, cell, cell, styleID)
}
