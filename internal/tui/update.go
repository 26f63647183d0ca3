package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the preview model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// HandleKeyMsg applies or cancels on the decision keys and passes the rest
// to the list for scrolling.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.decision != Pending {
		return m, nil
	}
	switch msg.String() {
	case "enter", "a", "s":
		m.decision = Apply
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.decision = Cancel
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.SetSize(msg.Width, max(msg.Height-8, 5))
	return m, nil
}
