package timecode_test

import (
	"errors"
	"testing"
	"time"

	"subshift/pkg/timecode"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    timecode.Offset
		wantErr bool
	}{
		{name: "integer seconds", input: "3", want: 3000},
		{name: "negative seconds", input: "-5", want: -5000},
		{name: "explicit plus", input: "+1.5", want: 1500},
		{name: "leading dot", input: ".25", want: 250},
		{name: "rounds to millisecond", input: "0.0015", want: 2},
		{name: "rounds negative away from zero", input: "-0.0015", want: -2},
		{name: "surrounding space", input: " 2 ", want: 2000},
		{name: "duration seconds", input: "1.5s", want: 1500},
		{name: "duration millis", input: "-250ms", want: -250},
		{name: "duration compound", input: "1m2s", want: 62000},
		{name: "empty", input: "", wantErr: true},
		{name: "word", input: "three", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "infinity", input: "-Inf", wantErr: true},
		{name: "huge", input: "1e300", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timecode.ParseOffset(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOffset(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var oerr *timecode.OffsetError
				if !errors.As(err, &oerr) {
					t.Errorf("ParseOffset(%q) error type = %T, want *OffsetError", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseOffset(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestOffsetConversions(t *testing.T) {
	o := timecode.OffsetFromSeconds(-1.5)
	if o.Seconds() != -1.5 {
		t.Errorf("Seconds() = %v, want -1.5", o.Seconds())
	}
	if o.Duration() != -1500*time.Millisecond {
		t.Errorf("Duration() = %v, want -1.5s", o.Duration())
	}
	if o.String() != "-1.500s" {
		t.Errorf("String() = %q, want -1.500s", o.String())
	}
	if s := timecode.Offset(0).String(); s != "+0.000s" {
		t.Errorf("zero offset String() = %q", s)
	}
	if d := timecode.OffsetFromDuration(1999 * time.Microsecond); d != 1 {
		t.Errorf("OffsetFromDuration truncation = %d, want 1", d)
	}
}
