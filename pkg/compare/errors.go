package compare

import (
	"errors"
	"fmt"
)

// ErrNoCommonSheets indicates the three workbooks share no sheet names.
var ErrNoCommonSheets = errors.New("no common sheets")

// ErrSheetNotFound indicates a named sheet is absent from a workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetError represents a failure scoped to one sheet of one file.
type SheetError struct {
	File  string
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("comparing sheet %q in %s: %v", e.Sheet, e.File, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
