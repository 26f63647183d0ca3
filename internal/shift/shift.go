// Package shift moves every cue range in an SRT document by a fixed offset.
package shift

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"subshift/internal/rewrite"
	"subshift/internal/scanner"
	"subshift/pkg/timecode"
)

// Change records one rewritten cue range.
type Change struct {
	Line         int // 1-based line of the timing line in the input
	Position     scanner.Position
	Before       timecode.Range
	After        timecode.Range
	StartClamped bool
	EndClamped   bool
	Caption      string // first caption line, for display only
}

// Clamped reports whether either end was forced up to zero.
func (c Change) Clamped() bool { return c.StartClamped || c.EndClamped }

// Collapsed reports whether clamping turned a cue with some length into one
// with none.
func (c Change) Collapsed() bool {
	return c.Clamped() && c.After.Start == c.After.End && c.Before.Start != c.Before.End
}

// Result is the outcome of shifting a document.
type Result struct {
	Text    string
	Changes []Change
}

// Stats summarizes a Result.
type Stats struct {
	Ranges       int
	ClampedStart int
	ClampedEnd   int
	Collapsed    int
	Inverted     int
}

// Stats counts ranges, clamped ends, collapsed cues and ranges whose end
// precedes their start.
func (r Result) Stats() Stats {
	var s Stats
	s.Ranges = len(r.Changes)
	for _, c := range r.Changes {
		if c.StartClamped {
			s.ClampedStart++
		}
		if c.EndClamped {
			s.ClampedEnd++
		}
		if c.Collapsed() {
			s.Collapsed++
		}
		if c.After.Inverted() {
			s.Inverted++
		}
	}
	return s
}

// Shifter applies one offset to every cue range of a document.
type Shifter struct {
	Offset timecode.Offset
	Policy timecode.Policy
	Logger logrus.FieldLogger
}

// New returns a Shifter with the given offset, the Strict policy and a
// logger that discards everything.
func New(offset timecode.Offset) *Shifter {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Shifter{Offset: offset, Policy: timecode.Strict, Logger: l}
}

// Document shifts every HH:MM:SS,mmm --> HH:MM:SS,mmm range in text and
// copies everything else through untouched. Either every range is rewritten
// or an error is returned and no text at all.
func (s *Shifter) Document(text string) (Result, error) {
	matches := scanner.Scan(text)
	if len(matches) == 0 {
		return Result{Text: text}, nil
	}

	rw := rewrite.NewTextRewriter(text)
	changes := make([]Change, 0, len(matches))

	for _, m := range matches {
		line := rw.LineOfByte(m.Position.Start)
		before, err := s.parseRange(m)
		if err != nil {
			return Result{}, errors.Wrapf(err, "line %d", line)
		}

		after := before.Shift(s.Offset)
		change := Change{
			Line:         line,
			Position:     m.Position,
			Before:       before,
			After:        after,
			StartClamped: int64(before.Start)+int64(s.Offset) < 0,
			EndClamped:   int64(before.End)+int64(s.Offset) < 0,
			Caption:      scanner.CaptionAfter(text, m.Position.End),
		}
		if change.Collapsed() {
			s.Logger.WithFields(logrus.Fields{
				"line":  line,
				"range": before.String(),
			}).Warn("cue clamped to zero length")
		}

		if err := rw.Replace(m.Position.Start, m.Position.End, after.String()); err != nil {
			return Result{}, errors.Wrapf(err, "line %d", line)
		}
		changes = append(changes, change)
	}
	if err := rw.CopyRemaining(); err != nil {
		return Result{}, err
	}

	s.Logger.WithFields(logrus.Fields{
		"ranges": len(changes),
		"offset": s.Offset.String(),
		"policy": s.Policy.String(),
	}).Debug("shifted document")

	return Result{Text: rw.String(), Changes: changes}, nil
}

func (s *Shifter) parseRange(m scanner.Match) (timecode.Range, error) {
	start, err := timecode.ParsePolicy(m.Start, s.Policy)
	if err != nil {
		return timecode.Range{}, errors.Wrap(err, "start")
	}
	end, err := timecode.ParsePolicy(m.End, s.Policy)
	if err != nil {
		return timecode.Range{}, errors.Wrap(err, "end")
	}
	return timecode.Range{Start: start, End: end}, nil
}

// AdjustDocument shifts every cue range in text by offsetSeconds using the
// Strict policy. Text without cue ranges comes back unchanged.
func AdjustDocument(text string, offsetSeconds float64) (string, error) {
	res, err := New(timecode.OffsetFromSeconds(offsetSeconds)).Document(text)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}
