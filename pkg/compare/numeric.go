package compare

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether a cell value participates in numeric
// comparison. Empty values are never numeric. Native numbers always
// are; text is numeric iff it parses as a float64 ("42", "3.14",
// "-1e5"). Blank-after-trim strings do not parse and are non-numeric.
func IsNumeric(v Value) bool {
	if v.IsEmpty() {
		return false
	}
	if v.Kind == KindNumber {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
	return err == nil
}
