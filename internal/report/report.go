// Package report renders the list of shifted cues as a markdown table and
// as standalone HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"subshift/internal/shift"
	"subshift/pkg/timecode"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

// Markdown builds the change report for one input file.
func Markdown(input string, offset timecode.Offset, res shift.Result) string {
	var sb strings.Builder
	stats := res.Stats()

	fmt.Fprintf(&sb, "# Subtitle shift: %s\n\n", cellEscaper.Replace(input))
	fmt.Fprintf(&sb, "Offset **%s**, %d cue ranges, %d clamped starts, %d clamped ends, %d collapsed.\n\n",
		offset, stats.Ranges, stats.ClampedStart, stats.ClampedEnd, stats.Collapsed)

	if len(res.Changes) == 0 {
		sb.WriteString("No cue ranges found.\n")
		return sb.String()
	}

	sb.WriteString("| Line | Before | After | Clamped | Caption |\n")
	sb.WriteString("| ---: | --- | --- | :---: | --- |\n")
	for _, c := range res.Changes {
		clamped := ""
		if c.Clamped() {
			clamped = "yes"
		}
		fmt.Fprintf(&sb, "| %d | `%s` | `%s` | %s | %s |\n",
			c.Line, c.Before, c.After, clamped, cellEscaper.Replace(c.Caption))
	}
	return sb.String()
}

// HTML renders markdown (GitHub tables enabled) into a minimal HTML page.
func HTML(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return nil, errors.Wrap(err, "render report")
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>subshift report</title></head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
