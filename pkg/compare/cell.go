package compare

// DiffKind classifies a recorded difference.
type DiffKind int

const (
	// DiffNone means the coordinate needs no output write.
	DiffNone DiffKind = iota
	// DiffNumeric means the output cell receives a numeric value.
	DiffNumeric
	// DiffText means the output cell receives the new raw value.
	DiffText
)

// CellDiff is the decision for one coordinate: what kind of difference
// it is and the value to write into the output cell.
type CellDiff struct {
	Kind  DiffKind
	Value Value
}

// Classify applies the cell decision table to one coordinate pair.
// Branches are evaluated in order:
//
//  1. both empty: skip.
//  2. strictly equal: skip.
//  3. both numeric: write the delta new-prev.
//  4. only new numeric: write the parsed new value; if strict parsing
//     fails the difference is dropped (or recorded as text under
//     Options.TextOnParseFailure).
//  5. only prev numeric: write the raw new value as text.
//  6. neither numeric: write the new value as text.
func Classify(newVal, prevVal Value, opts Options) CellDiff {
	if newVal.IsEmpty() && prevVal.IsEmpty() {
		return CellDiff{Kind: DiffNone}
	}
	if newVal.Equal(prevVal) {
		return CellDiff{Kind: DiffNone}
	}

	newNumeric := IsNumeric(newVal)
	prevNumeric := IsNumeric(prevVal)

	switch {
	case newNumeric && prevNumeric:
		newNum, errNew := newVal.Float()
		prevNum, errPrev := prevVal.Float()
		if errNew != nil || errPrev != nil {
			// Conversion failed after passing the numeric check; fall
			// back to a text difference carrying the new value.
			return CellDiff{Kind: DiffText, Value: newVal}
		}
		return CellDiff{Kind: DiffNumeric, Value: NumberValue(newNum - prevNum)}

	case newNumeric:
		newNum, err := newVal.Float()
		if err != nil {
			if opts.TextOnParseFailure {
				return CellDiff{Kind: DiffText, Value: newVal}
			}
			return CellDiff{Kind: DiffNone}
		}
		return CellDiff{Kind: DiffNumeric, Value: NumberValue(newNum)}

	case prevNumeric:
		return CellDiff{Kind: DiffText, Value: newVal}

	default:
		return CellDiff{Kind: DiffText, Value: newVal}
	}
}
