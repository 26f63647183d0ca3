package timecode

import "fmt"

// ParseError reports a timecode that could not be read.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timecode %q: %s", e.Text, e.Reason)
}

// OffsetError reports an offset argument that is not a number of seconds or a duration.
type OffsetError struct {
	Text   string
	Reason string
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("invalid offset %q: %s", e.Text, e.Reason)
}
