package shift_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"subshift/internal/shift"
	"subshift/pkg/timecode"
)

const twoCues = "1\n" +
	"00:00:01,000 --> 00:00:04,000\n" +
	"Hello, world.\n" +
	"\n" +
	"2\n" +
	"00:01:00,250 --> 00:01:02,750\n" +
	"Second cue\n" +
	"on two lines.\n"

func TestAdjustDocument(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset float64
		want   string
	}{
		{
			name:   "shift forward",
			text:   "00:00:10,000 --> 00:00:12,000",
			offset: 3,
			want:   "00:00:13,000 --> 00:00:15,000",
		},
		{
			name:   "clamp both ends",
			text:   "00:00:01,500 --> 00:00:02,000",
			offset: -5,
			want:   "00:00:00,000 --> 00:00:00,000",
		},
		{
			name:   "two cues with index lines and text",
			text:   twoCues,
			offset: 1.5,
			want: "1\n" +
				"00:00:02,500 --> 00:00:05,500\n" +
				"Hello, world.\n" +
				"\n" +
				"2\n" +
				"00:01:01,750 --> 00:01:04,250\n" +
				"Second cue\n" +
				"on two lines.\n",
		},
		{
			name:   "no timecodes",
			text:   "just some text\n12:00 is not a timecode\n",
			offset: 42,
			want:   "just some text\n12:00 is not a timecode\n",
		},
		{
			name:   "zero stays zero",
			text:   "00:00:00,000 --> 00:00:00,000",
			offset: 0,
			want:   "00:00:00,000 --> 00:00:00,000",
		},
		{
			name:   "clamp only the start",
			text:   "00:00:01,000 --> 00:00:09,000",
			offset: -2,
			want:   "00:00:00,000 --> 00:00:07,000",
		},
		{
			name:   "malformed timecodes pass through",
			text:   "00:00:01.000 --> 00:00:02.000\n0:00:01,000 --> 0:00:02,000\n00:00:01,000 --> 00:00:02,000",
			offset: 1,
			want:   "00:00:01.000 --> 00:00:02.000\n0:00:01,000 --> 0:00:02,000\n00:00:02,000 --> 00:00:03,000",
		},
		{
			name:   "crlf and trailing settings preserved",
			text:   "1\r\n00:00:01,000 --> 00:00:02,000 X1:10 X2:20\r\nhé\r\n",
			offset: 0.25,
			want:   "1\r\n00:00:01,250 --> 00:00:02,250 X1:10 X2:20\r\nhé\r\n",
		},
		{
			name:   "past twenty four hours",
			text:   "23:59:59,000 --> 24:00:01,000",
			offset: 2,
			want:   "24:00:01,000 --> 24:00:03,000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shift.AdjustDocument(tt.text, tt.offset)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustDocument_ZeroOffsetIsIdentity(t *testing.T) {
	for _, text := range []string{"", twoCues, "00:00:00,000 --> 00:00:00,000", "\n\n\n", "99:59:59,999 --> 99:59:59,999"} {
		got, err := shift.AdjustDocument(text, 0)
		require.NoError(t, err)
		require.Equal(t, text, got)
	}
}

func TestAdjustDocument_StrictRejectsOutOfRange(t *testing.T) {
	text := "1\n00:00:01,000 --> 00:00:02,000\nok\n\n2\n00:61:00,000 --> 00:62:00,000\nbad\n"

	got, err := shift.AdjustDocument(text, 1)

	require.Error(t, err)
	require.Empty(t, got, "no partial output on failure")
	var perr *timecode.ParseError
	require.True(t, errors.As(err, &perr), "error %v should wrap *timecode.ParseError", err)
	require.Equal(t, "00:61:00,000", perr.Text)
	require.Contains(t, err.Error(), "line 6")
}

func TestShifter_LenientNormalizes(t *testing.T) {
	s := shift.New(timecode.OffsetFromSeconds(1))
	s.Policy = timecode.Lenient

	res, err := s.Document("00:59:60,000 --> 00:61:00,000")

	require.NoError(t, err)
	require.Equal(t, "01:00:01,000 --> 01:01:01,000", res.Text)
}

func TestShifter_Changes(t *testing.T) {
	s := shift.New(timecode.OffsetFromSeconds(-2))

	res, err := s.Document(twoCues)
	require.NoError(t, err)
	require.Len(t, res.Changes, 2)

	first := res.Changes[0]
	require.Equal(t, 2, first.Line)
	require.Equal(t, "00:00:01,000 --> 00:00:04,000", first.Before.String())
	require.Equal(t, "00:00:00,000 --> 00:00:02,000", first.After.String())
	require.True(t, first.StartClamped)
	require.False(t, first.EndClamped)
	require.True(t, first.Clamped())
	require.Equal(t, "Hello, world.", first.Caption)

	second := res.Changes[1]
	require.Equal(t, 6, second.Line)
	require.False(t, second.Clamped())
	require.Equal(t, "Second cue", second.Caption)
	require.Equal(t, twoCues[second.Position.Start:second.Position.End], second.Before.String())

	require.Equal(t, shift.Stats{Ranges: 2, ClampedStart: 1}, res.Stats())
}

func TestShifter_WarnsOnCollapsedCue(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := shift.New(timecode.OffsetFromSeconds(-10))
	s.Logger = logger

	res, err := s.Document("00:00:01,000 --> 00:00:02,000\n00:00:12,000 --> 00:00:30,000\n00:00:11,000 --> 00:00:05,000\n")
	require.NoError(t, err)
	require.Equal(t, "00:00:00,000 --> 00:00:00,000\n00:00:02,000 --> 00:00:20,000\n00:00:01,000 --> 00:00:00,000\n", res.Text)

	require.Equal(t, shift.Stats{
		Ranges:       3,
		ClampedStart: 1,
		ClampedEnd:   2,
		Collapsed:    1,
		Inverted:     1,
	}, res.Stats())

	var warnings []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e)
		}
	}
	require.Len(t, warnings, 1)
	require.Equal(t, 1, warnings[0].Data["line"])
	require.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}
