// Package tui shows the cue ranges a shift will rewrite and asks whether to
// write the result.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"subshift/internal/shift"
	"subshift/pkg/timecode"
)

// Init initializes the preview model.
func (m model) Init() tea.Cmd {
	return nil
}

// Run shows the preview and reports whether the user chose to write the file.
func Run(input, output string, offset timecode.Offset, res shift.Result) (bool, error) {
	m := newModel(input, output, offset, res, 100, 24)
	final, err := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen()).Run()
	if err != nil {
		return false, errors.Wrap(err, "run preview")
	}
	adapter, ok := final.(*teaModelAdapter)
	if !ok {
		return false, errors.Errorf("unexpected preview model %T", final)
	}
	return adapter.m.Decision() == Apply, nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
