package scanner

import (
	"regexp"
	"strings"

	"subshift/pkg/timecode"
)

// Arrow separates the two timecodes of a cue range.
const Arrow = " --> "

// Group 1: start timecode
// Group 2: end timecode
var cueRange = regexp.MustCompile(`(` + timecode.Pattern + `)` + Arrow + `(` + timecode.Pattern + `)`)

// Position is a byte span [Start, End) within the scanned text.
type Position struct {
	Start int
	End   int
}

// Match is one cue range found in the text, with its raw timecodes.
type Match struct {
	Position Position
	Start    string
	End      string
}

// Scan returns every cue range in text, left to right and non-overlapping.
// Anything that does not fit HH:MM:SS,mmm --> HH:MM:SS,mmm is ignored.
func Scan(text string) []Match {
	locs := cueRange.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Position: Position{Start: loc[0], End: loc[1]},
			Start:    text[loc[2]:loc[3]],
			End:      text[loc[4]:loc[5]],
		})
	}
	return matches
}

// CaptionAfter returns the first non-blank line following offset end, which
// for a well-formed SRT cue is the first line of its text. It stops at the
// blank line that closes the cue.
func CaptionAfter(text string, end int) string {
	if end < 0 || end > len(text) {
		return ""
	}
	rest := text[end:]
	// skip the remainder of the timing line
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		return ""
	}
	line := rest
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		line = rest[:i]
	}
	return strings.TrimSpace(line)
}
