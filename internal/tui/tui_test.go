// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fortresspw/fortress/internal/config"
	"github.com/fortresspw/fortress/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		Language:   "en",
		GuessRate:  1e10,
		Generator:  config.Generator{Length: 16},
		Passphrase: config.Passphrase{Words: 4, Separator: "-"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg(tea.Key{Type: tea.KeyEsc})
	}
	if s == "enter" {
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestGenerateModel_InitialPassword(t *testing.T) {
	m := newGenerateModel(testConfig())
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.password.Length() != 16 {
		t.Fatalf("expected 16-char password, got %d", m.password.Length())
	}
	if m.report.Strength != model.StrengthStrong {
		t.Fatalf("expected Strong for default config, got %v", m.report.Strength)
	}
}

func TestGenerateModel_LengthKeys(t *testing.T) {
	m := newGenerateModel(testConfig())

	m, _ = m.Update(keyMsg("+"))
	if m.cfg.Length != 17 {
		t.Fatalf("expected length 17 after +, got %d", m.cfg.Length)
	}
	if m.password.Length() != 17 {
		t.Fatalf("expected regenerated 17-char password, got %d", m.password.Length())
	}

	m, _ = m.Update(keyMsg("-"))
	m, _ = m.Update(keyMsg("-"))
	if m.cfg.Length != 15 {
		t.Fatalf("expected length 15, got %d", m.cfg.Length)
	}
}

func TestGenerateModel_TogglingAllCategoriesOffIsAnError(t *testing.T) {
	m := newGenerateModel(testConfig())
	for _, key := range []string{"1", "2", "3", "4"} {
		m, _ = m.Update(keyMsg(key))
	}
	if m.err == nil {
		t.Fatal("expected a configuration error with every category disabled")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Fatalf("expected error in view, got %q", m.View())
	}
}

func TestGenerateModel_EscLeavesView(t *testing.T) {
	m := newGenerateModel(testConfig())
	m, _ = m.Update(keyMsg("esc"))
	if !m.done {
		t.Fatal("expected done after esc")
	}
}

func TestPassphraseModel_WordKeys(t *testing.T) {
	m := newPassphraseModel(testConfig())
	if m.passphrase.Words != 4 {
		t.Fatalf("expected 4 words, got %d", m.passphrase.Words)
	}

	m, _ = m.Update(keyMsg("+"))
	if m.cfg.Words != 5 {
		t.Fatalf("expected 5 words after +, got %d", m.cfg.Words)
	}
	if len(strings.Split(m.passphrase.Value, "-")) != 5 {
		t.Fatalf("expected regenerated 5-word passphrase, got %q", m.passphrase.Value)
	}
}

func TestCheckModel_LiveReport(t *testing.T) {
	m := newCheckModel(testConfig())
	_ = m.Focus()

	for _, r := range "aaaa" {
		m, _ = m.Update(keyMsg(string(r)))
	}
	if m.input.Value() != "aaaa" {
		t.Fatalf("expected input aaaa, got %q", m.input.Value())
	}
	if m.report.Strength != model.StrengthVeryWeak {
		t.Fatalf("expected Very Weak, got %v", m.report.Strength)
	}
	if m.report.Bits < 18 || m.report.Bits > 19 {
		t.Fatalf("expected about 18.8 bits, got %f", m.report.Bits)
	}
}

func TestMainModel_MenuNavigation(t *testing.T) {
	m := initialModel(testConfig())

	updated, _ := m.Update(keyMsg("j"))
	mm := updated.(mainModel)
	if mm.menu.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", mm.menu.cursor)
	}

	updated, _ = mm.Update(keyMsg("k"))
	mm = updated.(mainModel)
	if mm.menu.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", mm.menu.cursor)
	}

	updated, _ = mm.Update(keyMsg("enter"))
	mm = updated.(mainModel)
	if mm.state != generateView {
		t.Fatalf("expected generate view, got %v", mm.state)
	}
}

func TestStrengthMeter_Bounds(t *testing.T) {
	empty := strengthMeter(0, model.StrengthVeryWeak)
	if strings.Contains(empty, "█") {
		t.Fatalf("expected empty meter at 0 bits, got %q", empty)
	}
	full := strengthMeter(200, model.StrengthVeryStrong)
	if strings.Contains(full, "░") {
		t.Fatalf("expected full meter above 128 bits, got %q", full)
	}
}
