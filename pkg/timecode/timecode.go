package timecode

import (
	"fmt"
	"regexp"
	"strconv"
)

// Timecode is a point in a subtitle file, counted in milliseconds from 00:00:00,000.
type Timecode int64

// Zero is 00:00:00,000.
const Zero Timecode = 0

const (
	Millisecond Timecode = 1
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
)

// Policy decides what Parse does with minute or second fields of 60 and above.
type Policy int

const (
	// Strict rejects out-of-range minutes and seconds with a *ParseError.
	Strict Policy = iota
	// Lenient folds them into the larger units, so 00:75:00,000 reads as 01:15:00,000.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Pattern matches a single timecode in the HH:MM:SS,mmm layout.
const Pattern = `\d{2}:\d{2}:\d{2},\d{3}`

var layout = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// Parse reads an HH:MM:SS,mmm timecode using the Strict policy.
func Parse(s string) (Timecode, error) {
	return ParsePolicy(s, Strict)
}

// ParsePolicy reads an HH:MM:SS,mmm timecode. Hours may run from 00 to 99.
func ParsePolicy(s string, policy Policy) (Timecode, error) {
	m := layout.FindStringSubmatch(s)
	if m == nil {
		return Zero, &ParseError{Text: s, Reason: "expected HH:MM:SS,mmm"}
	}
	// The layout guarantees plain ASCII digits, so Atoi cannot fail here.
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	secs, _ := strconv.Atoi(m[3])
	ms, _ := strconv.Atoi(m[4])

	if policy == Strict {
		if mins >= 60 {
			return Zero, &ParseError{Text: s, Reason: fmt.Sprintf("minute %d out of range", mins)}
		}
		if secs >= 60 {
			return Zero, &ParseError{Text: s, Reason: fmt.Sprintf("second %d out of range", secs)}
		}
	}

	return Timecode(h)*Hour +
		Timecode(mins)*Minute +
		Timecode(secs)*Second +
		Timecode(ms)*Millisecond, nil
}

// MustParse is like Parse but panics on error. Meant for tests and constants.
func MustParse(s string) Timecode {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Format renders t as HH:MM:SS,mmm. Negative values render as zero and hours
// past 99 keep all their digits.
func Format(t Timecode) string {
	if t < 0 {
		t = Zero
	}
	h := t / Hour
	t -= h * Hour
	m := t / Minute
	t -= m * Minute
	s := t / Second
	t -= s * Second
	return fmt.Sprintf("%02d:%02d:%02d,%03d", int64(h), int64(m), int64(s), int64(t))
}

func (t Timecode) String() string { return Format(t) }

// Shift adds offset to t, clamping anything below zero to Zero.
func Shift(t Timecode, offset Offset) Timecode {
	shifted := t + Timecode(offset)
	if shifted < Zero {
		return Zero
	}
	return shifted
}

// Shift is the method form of Shift.
func (t Timecode) Shift(offset Offset) Timecode { return Shift(t, offset) }

// Range is a cue's start and end, as written on its timing line.
type Range struct {
	Start Timecode
	End   Timecode
}

// Shift moves both ends by offset. Each end is clamped on its own, so the
// result can have End before Start; that is left alone.
func (r Range) Shift(offset Offset) Range {
	return Range{Start: Shift(r.Start, offset), End: Shift(r.End, offset)}
}

// Inverted reports whether End precedes Start.
func (r Range) Inverted() bool { return r.End < r.Start }

// String renders the range as an SRT timing line.
func (r Range) String() string {
	return Format(r.Start) + " --> " + Format(r.End)
}
