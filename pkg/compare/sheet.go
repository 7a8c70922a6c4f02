package compare

import (
	"github.com/rs/zerolog"
)

// Engine runs cell-level comparison of workbook pairs against a
// template-derived output workbook.
type Engine struct {
	opener Opener
	opts   Options
	log    zerolog.Logger
}

// NewEngine creates a comparison engine backed by the given workbook
// opener.
func NewEngine(opener Opener, opts Options, log zerolog.Logger) *Engine {
	return &Engine{
		opener: opener,
		opts:   opts,
		log:    log,
	}
}

// CompareSheet walks every coordinate in the union extent of the new
// and previous sheets in row-major order, records differences, and
// mutates the output sheet in place. A failure at one coordinate is
// logged and skipped; it does not abort the sheet or touch counters.
func (e *Engine) CompareSheet(newSheet, prevSheet, out Sheet) SheetResult {
	var res SheetResult

	maxRow := max(newSheet.MaxRow(), prevSheet.MaxRow())
	maxCol := max(newSheet.MaxCol(), prevSheet.MaxCol())

	for row := 1; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			newVal, err := newSheet.Value(row, col)
			if err != nil {
				e.logCellError(row, col, err)
				continue
			}
			prevVal, err := prevSheet.Value(row, col)
			if err != nil {
				e.logCellError(row, col, err)
				continue
			}

			res.CellsCompared++

			diff := Classify(newVal, prevVal, e.opts)
			if diff.Kind == DiffNone {
				continue
			}

			if err := out.SetValue(row, col, diff.Value); err != nil {
				e.logCellError(row, col, err)
				continue
			}
			if err := out.Highlight(row, col); err != nil {
				e.logCellError(row, col, err)
				continue
			}

			res.DifferencesCount++
			if diff.Kind == DiffNumeric {
				res.NumericDifferences++
			} else {
				res.TextDifferences++
			}
		}
	}

	res.DifferencesFound = res.DifferencesCount > 0
	return res
}

func (e *Engine) logCellError(row, col int, err error) {
	e.log.Warn().Int("row", row).Int("col", col).Err(err).Msg("Cell processing failed, skipping")
}
