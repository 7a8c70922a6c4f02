// Package compare implements the workbook comparison engine: cell
// classification, sheet traversal, file orchestration, and run
// orchestration over a pluggable workbook capability surface.
package compare

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the storage type of a cell value.
type Kind int

const (
	// KindEmpty means the cell is absent or holds an empty string.
	KindEmpty Kind = iota
	// KindNumber means the cell holds a native numeric value.
	KindNumber
	// KindText means the cell holds a string.
	KindText
)

// Value is a typed cell value. Equality between values is strict:
// Number(5) and Text("5") are not equal even though both are numeric
// under IsNumeric.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
}

// Empty returns the empty cell value.
func Empty() Value {
	return Value{Kind: KindEmpty}
}

// NumberValue returns a native numeric cell value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// TextValue returns a string cell value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsEmpty reports whether the value is absent. An empty string counts
// as empty, the same as a missing cell.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty || (v.Kind == KindText && v.Text == "")
}

// Equal reports strict, type-aware equality. Kinds must match; no
// coercion between numbers and numeric-looking strings.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Number == o.Number
	case KindText:
		return v.Text == o.Text
	default:
		return true
	}
}

// Float converts the value to a float64. Empty converts to 0; text is
// parsed after trimming surrounding whitespace.
func (v Value) Float() (float64, error) {
	switch v.Kind {
	case KindEmpty:
		return 0, nil
	case KindNumber:
		return v.Number, nil
	default:
		return strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	}
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.Kind {
	case KindEmpty:
		return "<empty>"
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	default:
		return fmt.Sprintf("%q", v.Text)
	}
}
