// Package timecode reads, shifts and writes SRT timecodes (HH:MM:SS,mmm).
//
// Timecodes are plain millisecond counts, not calendar times, so a shift
// that crosses what would be midnight just keeps counting hours.
package timecode
