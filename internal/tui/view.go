package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// ModelView renders the preview model as a string.
func ModelView(m model) string {
	switch m.decision {
	case Apply:
		return fmt.Sprintf("Writing %s\n", m.output)
	case Cancel:
		return "Cancelled, nothing written.\n"
	}
	return previewView(m)
}

func summaryLine(m model) string {
	s := fmt.Sprintf("%d cue ranges shifted by %s", m.stats.Ranges, m.offset)
	if m.stats.ClampedStart+m.stats.ClampedEnd > 0 {
		s += warnStyle.Render(fmt.Sprintf("  %d starts / %d ends clamped to zero", m.stats.ClampedStart, m.stats.ClampedEnd))
	}
	return s
}

func previewView(m model) string {
	header := headerStyle.Render(fmt.Sprintf("%s → %s", m.input, m.output))
	changes := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(0, 1).
		Render(m.list.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		summaryLine(m),
		changes,
		helpStyle.Render("↑/↓: scroll • enter/a/s: write file • q/esc: cancel"),
	)
}
