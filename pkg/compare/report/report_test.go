package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py-simplified/comparison-tool/pkg/compare"
)

func sampleSummary() *compare.RunSummary {
	return &compare.RunSummary{
		Timestamp:        "2026-08-30T10:00:00Z",
		TotalDifferences: 5,
		Errors:           []string{"loading workbooks: zip: not a valid zip file"},
		FilesProcessed: []compare.FileResult{
			{
				Filename:         "report.xlsx",
				Status:           compare.StatusCompleted,
				SheetsProcessed:  2,
				TotalDifferences: 5,
				SheetDetails: map[string]compare.SheetResult{
					"Summary": {DifferencesFound: true, DifferencesCount: 3, NumericDifferences: 2, TextDifferences: 1, CellsCompared: 12},
					"Detail":  {DifferencesFound: true, DifferencesCount: 2, NumericDifferences: 0, TextDifferences: 2, CellsCompared: 8},
				},
				Errors: []string{},
			},
			{
				Filename:     "broken.xlsx",
				Status:       compare.StatusFailed,
				SheetDetails: map[string]compare.SheetResult{},
				Errors:       []string{"loading workbooks: zip: not a valid zip file"},
			},
		},
	}
}

func TestFormatText(t *testing.T) {
	text := FormatText(sampleSummary())

	assert.Contains(t, text, "EXCEL COMPARISON SUMMARY REPORT")
	assert.Contains(t, text, "Comparison completed at: 2026-08-30T10:00:00Z")
	assert.Contains(t, text, "Total files processed: 2")
	assert.Contains(t, text, "Total differences found: 5")
	assert.Contains(t, text, "ERRORS ENCOUNTERED:")
	assert.Contains(t, text, "File: report.xlsx")
	assert.Contains(t, text, "  Status: completed")
	assert.Contains(t, text, "    Summary: 3 differences (2 numeric, 1 text)")
	assert.Contains(t, text, "    Detail: 2 differences (0 numeric, 2 text)")
	assert.Contains(t, text, "  Status: failed")
	assert.Contains(t, text, "    - loading workbooks: zip: not a valid zip file")
}

func TestWriteProducesBothReports(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(sampleSummary(), dir))

	data, err := os.ReadFile(filepath.Join(dir, SummaryFilename))
	require.NoError(t, err)

	var decoded compare.RunSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 5, decoded.TotalDifferences)
	require.Len(t, decoded.FilesProcessed, 2)
	assert.Equal(t, "report.xlsx", decoded.FilesProcessed[0].Filename)
	assert.Equal(t, 3, decoded.FilesProcessed[0].SheetDetails["Summary"].DifferencesCount)

	text, err := os.ReadFile(filepath.Join(dir, ReportFilename))
	require.NoError(t, err)
	assert.Contains(t, string(text), "EXCEL COMPARISON SUMMARY REPORT")
}
