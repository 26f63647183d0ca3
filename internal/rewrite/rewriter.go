package rewrite

// SpanRewriter lets you copy/splice at the granularity of byte spans.
type SpanRewriter interface {
	// CopyUntil writes original bytes [cursor..offset-1], moving the cursor to offset.
	CopyUntil(offset int) error

	// Replace substitutes the original span [start, end) with replacement.
	//
	// Internally, this means:
	//   1. Copy any bytes before start
	//   2. Skip original bytes [start..end-1]
	//   3. Write replacement
	//   4. Leave the cursor at end, ready for further Copy/Replace calls
	Replace(start, end int, replacement string) error

	// CopyRemaining writes all leftover original bytes (from the cursor to EOF).
	CopyRemaining() error

	// LineOfByte maps a byte offset in the original text to its 1-based line number.
	LineOfByte(offset int) int

	// String returns the fully rewritten text.
	String() string
}
