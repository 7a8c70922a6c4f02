// Package report serializes a run summary to a machine-readable JSON
// file and a human-readable text report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/py-simplified/comparison-tool/pkg/compare"
)

// Default report filenames inside the results folder.
const (
	SummaryFilename = "comparison_summary.json"
	ReportFilename  = "comparison_report.txt"
)

// Write persists both report forms into dir.
func Write(summary *compare.RunSummary, dir string) error {
	if err := WriteJSON(summary, filepath.Join(dir, SummaryFilename)); err != nil {
		return err
	}
	return WriteText(summary, filepath.Join(dir, ReportFilename))
}

// WriteJSON writes the summary as indented JSON.
func WriteJSON(summary *compare.RunSummary, path string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteText writes the human-readable report.
func WriteText(summary *compare.RunSummary, path string) error {
	return os.WriteFile(path, []byte(FormatText(summary)), 0o644)
}

// FormatText renders the summary as the plain-text report body.
func FormatText(summary *compare.RunSummary) string {
	var b strings.Builder

	b.WriteString("EXCEL COMPARISON SUMMARY REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Comparison completed at: %s\n", summary.Timestamp)
	fmt.Fprintf(&b, "Total files processed: %d\n", len(summary.FilesProcessed))
	fmt.Fprintf(&b, "Total differences found: %d\n\n", summary.TotalDifferences)

	if len(summary.Errors) > 0 {
		b.WriteString("ERRORS ENCOUNTERED:\n")
		b.WriteString(strings.Repeat("-", 20) + "\n")
		for _, err := range summary.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
		b.WriteString("\n")
	}

	b.WriteString("FILE DETAILS:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, file := range summary.FilesProcessed {
		fmt.Fprintf(&b, "\nFile: %s\n", file.Filename)
		fmt.Fprintf(&b, "  Status: %s\n", file.Status)
		fmt.Fprintf(&b, "  Sheets processed: %d\n", file.SheetsProcessed)
		fmt.Fprintf(&b, "  Total differences: %d\n", file.TotalDifferences)

		if len(file.SheetDetails) > 0 {
			b.WriteString("  Sheet breakdown:\n")
			for _, name := range sortedSheetNames(file.SheetDetails) {
				details := file.SheetDetails[name]
				fmt.Fprintf(&b, "    %s: %d differences (%d numeric, %d text)\n",
					name, details.DifferencesCount, details.NumericDifferences, details.TextDifferences)
			}
		}

		if len(file.Errors) > 0 {
			b.WriteString("  Errors:\n")
			for _, err := range file.Errors {
				fmt.Fprintf(&b, "    - %s\n", err)
			}
		}
	}

	return b.String()
}

func sortedSheetNames(details map[string]compare.SheetResult) []string {
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
