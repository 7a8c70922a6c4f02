package compare

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// CompareFile compares the new and previous versions of one workbook
// and writes an annotated copy of the template to outputPath. The
// template supplies structure and formatting; new and previous are
// read-only data sources. Failures are recorded in the returned
// FileResult; they never propagate as errors.
func (e *Engine) CompareFile(newPath, prevPath, templatePath, outputPath string) FileResult {
	res := FileResult{
		Filename:     filepath.Base(newPath),
		Status:       StatusFailed,
		SheetDetails: make(map[string]SheetResult),
		Errors:       []string{},
	}

	// The output starts as a byte copy of the template so the annotated
	// workbook keeps the template's formatting.
	if err := copyFile(templatePath, outputPath); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("copying template: %v", err))
		return res
	}

	newWB, err := e.opener.Open(newPath, true)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("loading workbooks: %v", err))
		return res
	}
	defer newWB.Close()

	prevWB, err := e.opener.Open(prevPath, true)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("loading workbooks: %v", err))
		return res
	}
	defer prevWB.Close()

	outWB, err := e.opener.Open(outputPath, false)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("loading workbooks: %v", err))
		return res
	}
	defer outWB.Close()

	common := commonSheets(newWB.SheetNames(), prevWB.SheetNames(), outWB.SheetNames())
	if len(common) == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("no common sheets found in %s", res.Filename))
		res.Status = StatusCompleted
		return res
	}

	e.log.Info().Str("file", res.Filename).Int("sheets", len(common)).Msg("Processing sheets")

	for _, name := range common {
		sheetRes, err := e.compareOneSheet(newWB, prevWB, outWB, name)
		if err != nil {
			sheetErr := &SheetError{File: res.Filename, Sheet: name, Err: err}
			e.log.Error().Err(sheetErr).Msg("Sheet comparison failed")
			res.Errors = append(res.Errors, sheetErr.Error())
			continue
		}

		res.SheetDetails[name] = sheetRes
		res.TotalDifferences += sheetRes.DifferencesCount
		res.SheetsProcessed++

		if sheetRes.DifferencesCount > 0 {
			e.log.Info().
				Str("sheet", name).
				Int("differences", sheetRes.DifferencesCount).
				Int("numeric", sheetRes.NumericDifferences).
				Int("text", sheetRes.TextDifferences).
				Msg("Differences found")
		}
	}

	if err := outWB.Save(); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("saving output file: %v", err))
		return res
	}

	res.Status = StatusCompleted
	return res
}

func (e *Engine) compareOneSheet(newWB, prevWB, outWB Workbook, name string) (SheetResult, error) {
	newSheet, err := newWB.Sheet(name)
	if err != nil {
		return SheetResult{}, err
	}
	prevSheet, err := prevWB.Sheet(name)
	if err != nil {
		return SheetResult{}, err
	}
	outSheet, err := outWB.Sheet(name)
	if err != nil {
		return SheetResult{}, err
	}
	return e.CompareSheet(newSheet, prevSheet, outSheet), nil
}

// commonSheets returns the sorted three-way intersection of sheet
// names. Sheets present in only one or two of the workbooks are
// excluded.
func commonSheets(newNames, prevNames, outNames []string) []string {
	prevSet := make(map[string]struct{}, len(prevNames))
	for _, n := range prevNames {
		prevSet[n] = struct{}{}
	}
	outSet := make(map[string]struct{}, len(outNames))
	for _, n := range outNames {
		outSet[n] = struct{}{}
	}

	var common []string
	for _, n := range newNames {
		if _, ok := prevSet[n]; !ok {
			continue
		}
		if _, ok := outSet[n]; !ok {
			continue
		}
		common = append(common, n)
	}
	sort.Strings(common)
	return common
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
