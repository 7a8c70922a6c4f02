package xlsx

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// fixtureRows is the baseline sample data written into every fixture
// workbook.
var fixtureRows = [][]interface{}{
	{"Name", "Age", "City", "Score"},
	{"Alice", 25, "New York", 95},
	{"Bob", 30, "Los Angeles", 87},
	{"Charlie", 35, "Chicago", 92},
	{"Diana", 28, "Houston", 88},
}

// fixtureEdits are the cells changed in the "new" fixture so a sample
// run produces both numeric and text differences.
var fixtureEdits = map[string]interface{}{
	"B2": 26,       // Alice aged a year: numeric delta 1
	"D3": 90,       // Bob's score rose: numeric delta 3
	"C4": "Boston", // Charlie moved: text difference
}

// GenerateFixtures writes sample test_data.xlsx workbooks into the
// new, prev, and template folders under base. The prev and template
// copies share the baseline data; the new copy carries a few seeded
// edits so a run over the fixtures reports differences.
func GenerateFixtures(base string) error {
	for _, folder := range []string{"new", "prev", "template"} {
		dir := filepath.Join(base, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := writeFixture(filepath.Join(dir, "test_data.xlsx"), folder == "new"); err != nil {
			return err
		}
	}
	return nil
}

func writeFixture(path string, edited bool) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for rowIdx, row := range fixtureRows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if edited {
		for cell, value := range fixtureEdits {
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
