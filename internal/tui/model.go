package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mattn/go-runewidth"

	"subshift/internal/shift"
	"subshift/pkg/timecode"
)

// Decision is what the user chose to do with the shifted file.
type Decision int

const (
	Pending Decision = iota
	Apply
	Cancel
)

// ChangeItem represents one shifted cue range in the list.
type ChangeItem struct {
	change shift.Change
	width  int
}

func (c ChangeItem) Title() string {
	mark := ""
	if c.change.Clamped() {
		mark = "  (clamped)"
	}
	return fmt.Sprintf("%s  →  %s%s", c.change.Before, c.change.After, mark)
}

func (c ChangeItem) Description() string {
	desc := fmt.Sprintf("line %d", c.change.Line)
	if c.change.Caption != "" {
		desc += "  " + c.change.Caption
	}
	if c.width > 0 {
		desc = runewidth.Truncate(desc, c.width, "…")
	}
	return desc
}

func (c ChangeItem) FilterValue() string { return c.change.Caption }

// model is the Bubbletea model for the preview.
type model struct {
	list     list.Model
	input    string
	output   string
	offset   timecode.Offset
	stats    shift.Stats
	decision Decision
	height   int
	width    int
}

// newModel builds the preview model for a shift result.
func newModel(input, output string, offset timecode.Offset, res shift.Result, width, height int) model {
	// room for the border, padding and the list's own chrome
	itemWidth := max(width-8, 10)
	items := make([]list.Item, len(res.Changes))
	for i, c := range res.Changes {
		items[i] = ChangeItem{change: c, width: itemWidth}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, max(height-8, 5))
	l.Title = fmt.Sprintf("%s  %s", input, offset)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return model{
		list:   l,
		input:  input,
		output: output,
		offset: offset,
		stats:  res.Stats(),
		height: height,
		width:  width,
	}
}

// Decision reports what the user chose.
func (m model) Decision() Decision { return m.decision }
