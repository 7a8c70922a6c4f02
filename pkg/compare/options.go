package compare

// Options configures comparison behavior.
type Options struct {
	// TextOnParseFailure controls the branch where the new value passes
	// the numeric check against a non-numeric previous value but still
	// fails strict float conversion. The reference behavior drops the
	// difference entirely; setting this records it as a text difference
	// with the raw new value instead.
	TextOnParseFailure bool
}

// DefaultOptions returns default comparison options, matching the
// reference behavior exactly.
func DefaultOptions() Options {
	return Options{}
}
