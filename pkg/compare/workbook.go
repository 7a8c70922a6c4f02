package compare

// Workbook is the capability surface the engine needs from an open
// spreadsheet file. The xlsx package provides the excelize-backed
// implementation; tests may substitute in-memory fakes.
type Workbook interface {
	// SheetNames returns the names of all sheets in the workbook.
	SheetNames() []string
	// Sheet returns the named sheet, or an error wrapping
	// ErrSheetNotFound when it is absent.
	Sheet(name string) (Sheet, error)
	// Save persists the workbook back to the path it was opened from.
	Save() error
	// Close releases the workbook.
	Close() error
}

// Sheet is a 2-D cell grid addressed by 1-based (row, column).
type Sheet interface {
	// MaxRow returns the highest occupied row, 0 for an empty sheet.
	MaxRow() int
	// MaxCol returns the highest occupied column, 0 for an empty sheet.
	MaxCol() int
	// Value reads the typed value at a coordinate. Coordinates beyond
	// the occupied range read as Empty.
	Value(row, col int) (Value, error)
	// SetValue writes a value at a coordinate.
	SetValue(row, col int, v Value) error
	// Highlight applies the fixed changed-cell style at a coordinate.
	Highlight(row, col int) error
}

// Opener opens workbook files. When dataOnly is set, formula cells
// must surface their last-computed cached value instead of formula
// text.
type Opener interface {
	Open(path string, dataOnly bool) (Workbook, error)
}
