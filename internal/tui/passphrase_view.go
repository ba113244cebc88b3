// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fortresspw/fortress/internal/config"
	"github.com/fortresspw/fortress/internal/entropy"
	"github.com/fortresspw/fortress/internal/generator"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/model"
)

// maxPassphraseWords caps the word count reachable through the TUI.
const maxPassphraseWords = 20

// passphraseModel holds the state for the interactive passphrase
// generator view.
type passphraseModel struct {
	cfg        generator.PassphraseConfig
	guessRate  float64
	passphrase model.Password
	report     model.EntropyReport
	status     string
	err        error
	done       bool
}

// newPassphraseModel builds the view with the configured defaults and
// an initial passphrase.
func newPassphraseModel(appCfg config.Config) passphraseModel {
	cfg := generator.DefaultPassphraseConfig()
	cfg.Words = appCfg.Passphrase.Words
	cfg.Separator = appCfg.Passphrase.Separator

	m := passphraseModel{cfg: cfg, guessRate: appCfg.GuessRate}
	m.regenerate()
	return m
}

// regenerate draws a fresh passphrase and recomputes its report.
func (m *passphraseModel) regenerate() {
	m.status = ""
	passphrase, err := generator.GeneratePassphrase(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.passphrase = passphrase
	bits := entropy.ForAlphabet(passphrase.Words, passphrase.AlphabetSize)
	m.report = entropy.Estimate(bits, m.guessRate)
}

// Update handles key presses for the passphrase view.
func (m passphraseModel) Update(msg tea.Msg) (passphraseModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.done = true
	case "r", "enter":
		m.regenerate()
	case "+", "=":
		if m.cfg.Words < maxPassphraseWords {
			m.cfg.Words++
			m.regenerate()
		}
	case "-", "_":
		if m.cfg.Words > 1 {
			m.cfg.Words--
			m.regenerate()
		}
	case "t":
		m.cfg.Capitalize = !m.cfg.Capitalize
		m.regenerate()
	case "c":
		if m.err == nil {
			if err := clipboard.WriteAll(m.passphrase.Value); err != nil {
				m.status = errorStyle.Render(i18n.T("generate.copy_failed", err))
			} else {
				m.status = statusStyle.Render(i18n.T("tui.copied"))
			}
		}
	}
	return m, nil
}

// View renders the passphrase view.
func (m passphraseModel) View() string {
	s := titleStyle.Render(i18n.T("passphrase.header")) + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(i18n.T("tui.error", m.err)) + "\n"
	} else {
		s += passwordStyle.Render(m.passphrase.Value) + "\n\n"
		s += strengthMeter(m.report.Bits, m.report.Strength) + " " + strengthStyle(m.report.Strength).Render(strengthLabel(m.report.Strength)) + "\n"
		s += labelStyle.Render(i18n.T("report.entropy")) + ": " + i18n.T("report.entropy_value", m.report.Bits) + "\n"
		s += labelStyle.Render(i18n.T("report.crack_time")) + ": " + m.report.CrackTime + "\n"
	}

	s += "\n" + labelStyle.Render(i18n.T("tui.words")) + fmt.Sprintf(": %d", m.cfg.Words) + "\n"
	s += labelStyle.Render(i18n.T("tui.separator")) + fmt.Sprintf(": %q", m.cfg.Separator) + "\n"
	s += toggleLine("t", i18n.T("tui.capitalize"), m.cfg.Capitalize)

	if m.status != "" {
		s += "\n" + m.status + "\n"
	}
	s += "\n" + helpStyle.Render(i18n.T("tui.help_passphrase"))
	return s
}
