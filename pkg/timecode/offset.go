package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Offset is a signed shift applied to every timecode, in whole milliseconds.
type Offset int64

// OffsetFromSeconds converts a real number of seconds, rounding to the
// nearest millisecond.
func OffsetFromSeconds(seconds float64) Offset {
	return Offset(math.Round(seconds * 1000))
}

// OffsetFromDuration truncates d to whole milliseconds.
func OffsetFromDuration(d time.Duration) Offset {
	return Offset(d / time.Millisecond)
}

// Seconds returns the offset as a real number of seconds.
func (o Offset) Seconds() float64 { return float64(o) / 1000 }

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration { return time.Duration(o) * time.Millisecond }

// String renders the offset as signed seconds, e.g. +1.500s.
func (o Offset) String() string {
	sign := "+"
	v := int64(o)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%03ds", sign, v/1000, v%1000)
}

// ParseOffset reads an offset given either as a plain number of seconds
// ("3", "-1.5", "+.25") or as a Go duration ("1.5s", "-250ms", "1m2s").
func ParseOffset(s string) (Offset, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, &OffsetError{Text: s, Reason: "empty"}
	}

	if seconds, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return 0, &OffsetError{Text: s, Reason: "not a finite number"}
		}
		if math.Abs(seconds) > math.MaxInt64/1000 {
			return 0, &OffsetError{Text: s, Reason: "out of range"}
		}
		return OffsetFromSeconds(seconds), nil
	}

	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, &OffsetError{Text: s, Reason: "expected seconds (e.g. -1.5) or a duration (e.g. 1500ms)"}
	}
	return OffsetFromDuration(d), nil
}
