package rewrite

import (
	"fmt"
	"sort"
	"strings"
)

// TextRewriter implements SpanRewriter over an in-memory string.
type TextRewriter struct {
	original    string
	output      strings.Builder
	cursor      int   // bytes of original consumed so far
	lineOffsets []int // precomputed byte offset where each line begins
}

// NewTextRewriter constructs a TextRewriter over the full original text.
func NewTextRewriter(original string) *TextRewriter {
	rw := &TextRewriter{
		original:    original,
		lineOffsets: BuildLineOffsets(original),
	}
	rw.output.Grow(len(original))
	return rw
}

// CopyUntil writes original bytes [cursor..offset-1] to output.
func (rw *TextRewriter) CopyUntil(offset int) error {
	if offset < rw.cursor || offset > len(rw.original) {
		return fmt.Errorf("copy until %d: cursor at %d of %d", offset, rw.cursor, len(rw.original))
	}
	rw.output.WriteString(rw.original[rw.cursor:offset])
	rw.cursor = offset
	return nil
}

// Replace writes replacement in place of original bytes [start, end).
// Spans must arrive in order and must not overlap.
func (rw *TextRewriter) Replace(start, end int, replacement string) error {
	if end < start {
		return fmt.Errorf("replace [%d, %d): end before start", start, end)
	}
	if err := rw.CopyUntil(start); err != nil {
		return err
	}
	if end > len(rw.original) {
		return fmt.Errorf("replace [%d, %d): past end of text (%d)", start, end, len(rw.original))
	}
	rw.output.WriteString(replacement)
	rw.cursor = end
	return nil
}

// CopyRemaining writes everything from the cursor through EOF.
func (rw *TextRewriter) CopyRemaining() error {
	return rw.CopyUntil(len(rw.original))
}

// LineOfByte returns the 1-based line that contains offset.
func (rw *TextRewriter) LineOfByte(offset int) int {
	i := sort.Search(len(rw.lineOffsets), func(i int) bool {
		return rw.lineOffsets[i] > offset
	})
	if i == 0 {
		return 1
	}
	return i
}

// String returns the rewritten text.
func (rw *TextRewriter) String() string {
	return rw.output.String()
}

// BuildLineOffsets returns the byte offsets where each line begins.
// E.g. for "ab\ncd", offsets = [0, 3].
func BuildLineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
