// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fortresspw/fortress/internal/config"
	"github.com/fortresspw/fortress/internal/entropy"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/model"
)

// checkModel holds the state for the strength-check view: a text input
// whose content is analyzed live on every keystroke.
type checkModel struct {
	input     textinput.Model
	guessRate float64
	report    model.EntropyReport
	done      bool
}

// newCheckModel builds the strength-check view.
func newCheckModel(appCfg config.Config) checkModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("check.prompt")
	ti.CharLimit = 256
	return checkModel{
		input:     ti,
		guessRate: appCfg.GuessRate,
		report:    entropy.Check("", appCfg.GuessRate),
	}
}

// Focus puts the text input into editing mode.
func (m *checkModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Update handles input for the check view and recomputes the report.
func (m checkModel) Update(msg tea.Msg) (checkModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.report = entropy.Check(m.input.Value(), m.guessRate)
	return m, cmd
}

// View renders the check view.
func (m checkModel) View() string {
	s := titleStyle.Render(i18n.T("check.header")) + "\n\n"
	s += m.input.View() + "\n\n"
	s += strengthMeter(m.report.Bits, m.report.Strength) + " " + strengthStyle(m.report.Strength).Render(strengthLabel(m.report.Strength)) + "\n"
	s += labelStyle.Render(i18n.T("report.entropy")) + ": " + i18n.T("report.entropy_value", m.report.Bits) + "\n"
	s += labelStyle.Render(i18n.T("report.crack_time")) + ": " + m.report.CrackTime + "\n"
	s += "\n" + helpStyle.Render(i18n.T("tui.help_check"))
	return s
}
