package compare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Layout names the folders a comparison run reads from and writes to.
type Layout struct {
	// NewDir holds the new workbook versions.
	NewDir string
	// PrevDir holds the previous workbook versions.
	PrevDir string
	// TemplateDir holds the formatting templates.
	TemplateDir string
	// OutputDir receives annotated workbooks and reports.
	OutputDir string
	// OutputSuffix is appended to the file stem of every output
	// workbook, e.g. "report.xlsx" becomes "report_COMPARISON.xlsx".
	OutputSuffix string
}

// DefaultLayout returns the standard folder layout under base.
func DefaultLayout(base string) Layout {
	return Layout{
		NewDir:       filepath.Join(base, "new"),
		PrevDir:      filepath.Join(base, "prev"),
		TemplateDir:  filepath.Join(base, "template"),
		OutputDir:    filepath.Join(base, "comparison_results"),
		OutputSuffix: "_COMPARISON",
	}
}

// Runner discovers matched workbook files and drives the engine over
// them, accumulating a RunSummary.
type Runner struct {
	layout Layout
	engine *Engine
	log    zerolog.Logger
}

// NewRunner creates a runner for the given layout and engine.
func NewRunner(layout Layout, engine *Engine, log zerolog.Logger) *Runner {
	return &Runner{
		layout: layout,
		engine: engine,
		log:    log,
	}
}

// Run compares every workbook present in all three input folders and
// returns the aggregated summary. Per-file failures are recorded and
// processing continues; the run itself always terminates normally once
// the output folder exists.
func (r *Runner) Run() (*RunSummary, error) {
	if err := os.MkdirAll(r.layout.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output folder: %w", err)
	}

	summary := &RunSummary{
		Timestamp:      time.Now().Format(time.RFC3339),
		FilesProcessed: []FileResult{},
		Errors:         []string{},
	}

	files, err := r.matchingFiles()
	if err != nil {
		summary.Errors = append(summary.Errors, err.Error())
		return summary, nil
	}
	if len(files) == 0 {
		r.log.Info().Msg("No matching workbooks found in all three folders, nothing to do")
		return summary, nil
	}

	r.log.Info().Int("files", len(files)).Msg("Starting comparison")

	for _, name := range files {
		r.log.Info().Str("file", name).Msg("Processing file")

		fileRes := r.compareOne(name, summary)
		summary.FilesProcessed = append(summary.FilesProcessed, fileRes)
		summary.TotalDifferences += fileRes.TotalDifferences
		summary.Errors = append(summary.Errors, fileRes.Errors...)
	}

	r.log.Info().
		Int("files", len(summary.FilesProcessed)).
		Int("total_differences", summary.TotalDifferences).
		Msg("Comparison completed")

	return summary, nil
}

// compareOne invokes the engine for a single matched filename. A panic
// escaping the engine is recorded as a run-level error so the run can
// continue with the next file.
func (r *Runner) compareOne(name string, summary *RunSummary) (res FileResult) {
	defer func() {
		if rec := recover(); rec != nil {
			msg := fmt.Sprintf("processing %s: %v", name, rec)
			r.log.Error().Str("file", name).Interface("panic", rec).Msg("File comparison panicked")
			summary.Errors = append(summary.Errors, msg)
			res = FileResult{
				Filename:     name,
				Status:       StatusFailed,
				SheetDetails: make(map[string]SheetResult),
				Errors:       []string{msg},
			}
		}
	}()

	return r.engine.CompareFile(
		filepath.Join(r.layout.NewDir, name),
		filepath.Join(r.layout.PrevDir, name),
		filepath.Join(r.layout.TemplateDir, name),
		filepath.Join(r.layout.OutputDir, outputName(name, r.layout.OutputSuffix)),
	)
}

// matchingFiles returns the sorted set of workbook filenames present
// in all three input folders. Files present in only one or two folders
// are logged as near misses but excluded from the run.
func (r *Runner) matchingFiles() ([]string, error) {
	newSet, err := listWorkbooks(r.layout.NewDir)
	if err != nil {
		return nil, err
	}
	prevSet, err := listWorkbooks(r.layout.PrevDir)
	if err != nil {
		return nil, err
	}
	tmplSet, err := listWorkbooks(r.layout.TemplateDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	for _, set := range []map[string]struct{}{newSet, prevSet, tmplSet} {
		for name := range set {
			seen[name]++
		}
	}

	var common []string
	for name, count := range seen {
		if count == 3 {
			common = append(common, name)
		} else {
			r.log.Warn().Str("file", name).Int("folders", count).
				Msg("Workbook missing from at least one input folder, excluded")
		}
	}
	sort.Strings(common)
	return common, nil
}

// listWorkbooks returns the set of .xlsx filenames in dir. A missing
// folder reads as empty.
func listWorkbooks(dir string) (map[string]struct{}, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	set := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".xlsx") {
			set[entry.Name()] = struct{}{}
		}
	}
	return set, nil
}

// outputName builds the annotated workbook filename by inserting the
// suffix before the last extension.
func outputName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}
