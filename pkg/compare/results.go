package compare

// File processing status values.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// SheetResult aggregates the outcome of comparing one sheet.
type SheetResult struct {
	// DifferencesFound is true when at least one difference was recorded.
	DifferencesFound bool `json:"differences_found"`
	// DifferencesCount is the total number of recorded differences.
	// It always equals NumericDifferences + TextDifferences.
	DifferencesCount int `json:"differences_count"`
	// NumericDifferences counts differences written as numeric deltas.
	NumericDifferences int `json:"numeric_differences"`
	// TextDifferences counts differences written as text values.
	TextDifferences int `json:"text_differences"`
	// CellsCompared counts every coordinate visited in the union extent,
	// including empty and equal cells.
	CellsCompared int `json:"cells_compared"`
}

// FileResult aggregates the outcome of comparing one matched file.
type FileResult struct {
	// Filename is the workbook file name (no path).
	Filename string `json:"filename"`
	// Status is "completed" or "failed".
	Status string `json:"status"`
	// SheetsProcessed counts sheets that ran to completion.
	SheetsProcessed int `json:"sheets_processed"`
	// TotalDifferences sums DifferencesCount across all sheets.
	TotalDifferences int `json:"total_differences"`
	// SheetDetails maps sheet name to its result.
	SheetDetails map[string]SheetResult `json:"sheet_details"`
	// Errors lists failures scoped to this file.
	Errors []string `json:"errors"`
}

// RunSummary is the top-level outcome of one comparison run. It is
// created fresh per run and handed to the report writers at the end.
type RunSummary struct {
	// Timestamp is the run start time in RFC 3339 format.
	Timestamp string `json:"timestamp"`
	// FilesProcessed lists per-file results in processing order.
	FilesProcessed []FileResult `json:"files_processed"`
	// TotalDifferences is the running total across all files.
	TotalDifferences int `json:"total_differences"`
	// Errors collects every failure recorded during the run.
	Errors []string `json:"errors"`
}
