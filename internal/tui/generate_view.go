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

// generateModel holds the state for the interactive password
// generator view.
type generateModel struct {
	cfg       generator.Config
	guessRate float64
	password  model.Password
	report    model.EntropyReport
	status    string
	err       error
	done      bool
}

// newGenerateModel builds the view with the configured defaults and an
// initial password.
func newGenerateModel(appCfg config.Config) generateModel {
	cfg := generator.DefaultConfig()
	cfg.Length = appCfg.Generator.Length
	cfg.ExcludeAmbiguous = appCfg.Generator.ExcludeAmbiguous
	cfg.RequireEachCategory = appCfg.Generator.RequireEach

	m := generateModel{cfg: cfg, guessRate: appCfg.GuessRate}
	m.regenerate()
	return m
}

// regenerate draws a fresh password and recomputes its report.
func (m *generateModel) regenerate() {
	m.status = ""
	password, err := generator.Generate(m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.password = password
	bits := entropy.ForAlphabet(password.Length(), password.AlphabetSize)
	m.report = entropy.Estimate(bits, m.guessRate)
}

// Update handles key presses for the generator view.
func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
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
		if m.cfg.Length < generator.MaxLength {
			m.cfg.Length++
			m.regenerate()
		}
	case "-", "_":
		if m.cfg.Length > 1 {
			m.cfg.Length--
			m.regenerate()
		}
	case "1":
		m.cfg.UseLowercase = !m.cfg.UseLowercase
		m.regenerate()
	case "2":
		m.cfg.UseUppercase = !m.cfg.UseUppercase
		m.regenerate()
	case "3":
		m.cfg.UseDigits = !m.cfg.UseDigits
		m.regenerate()
	case "4":
		m.cfg.UseSymbols = !m.cfg.UseSymbols
		m.regenerate()
	case "a":
		m.cfg.ExcludeAmbiguous = !m.cfg.ExcludeAmbiguous
		m.regenerate()
	case "e":
		m.cfg.RequireEachCategory = !m.cfg.RequireEachCategory
		m.regenerate()
	case "c":
		if m.err == nil {
			if err := clipboard.WriteAll(m.password.Value); err != nil {
				m.status = errorStyle.Render(i18n.T("generate.copy_failed", err))
			} else {
				m.status = statusStyle.Render(i18n.T("tui.copied"))
			}
		}
	}
	return m, nil
}

// View renders the generator view.
func (m generateModel) View() string {
	s := titleStyle.Render(i18n.T("generate.header")) + "\n\n"

	if m.err != nil {
		s += errorStyle.Render(i18n.T("tui.error", m.err)) + "\n"
	} else {
		s += passwordStyle.Render(m.password.Value) + "\n\n"
		s += strengthMeter(m.report.Bits, m.report.Strength) + " " + strengthStyle(m.report.Strength).Render(strengthLabel(m.report.Strength)) + "\n"
		s += labelStyle.Render(i18n.T("report.entropy")) + ": " + i18n.T("report.entropy_value", m.report.Bits) + "\n"
		s += labelStyle.Render(i18n.T("report.crack_time")) + ": " + m.report.CrackTime + "\n"
	}

	s += "\n" + labelStyle.Render(i18n.T("tui.length")) + fmt.Sprintf(": %d", m.cfg.Length) + "\n"
	s += toggleLine("1", i18n.T("tui.lowercase"), m.cfg.UseLowercase)
	s += toggleLine("2", i18n.T("tui.uppercase"), m.cfg.UseUppercase)
	s += toggleLine("3", i18n.T("tui.digits"), m.cfg.UseDigits)
	s += toggleLine("4", i18n.T("tui.symbols"), m.cfg.UseSymbols)
	s += toggleLine("a", i18n.T("tui.exclude_ambiguous"), m.cfg.ExcludeAmbiguous)
	s += toggleLine("e", i18n.T("tui.require_each"), m.cfg.RequireEachCategory)

	if m.status != "" {
		s += "\n" + m.status + "\n"
	}
	s += "\n" + helpStyle.Render(i18n.T("tui.help_generate"))
	return s
}

// strengthLabel returns the localized label for a strength band.
func strengthLabel(s model.Strength) string {
	switch s {
	case model.StrengthVeryWeak:
		return i18n.T("strength.very_weak")
	case model.StrengthWeak:
		return i18n.T("strength.weak")
	case model.StrengthFair:
		return i18n.T("strength.fair")
	case model.StrengthStrong:
		return i18n.T("strength.strong")
	case model.StrengthVeryStrong:
		return i18n.T("strength.very_strong")
	}
	return s.String()
}

// toggleLine renders one on/off option row.
func toggleLine(key, label string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return itemStyle.Render(fmt.Sprintf("%s %s %s", box, key, label)) + "\n"
}
