// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/model"
)

// Colors for the strength bands, weakest to strongest.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	passwordStyle = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	strengthStyles = map[model.Strength]lipgloss.Style{
		model.StrengthVeryWeak:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		model.StrengthWeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		model.StrengthFair:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		model.StrengthStrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		model.StrengthVeryStrong: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
)

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

// printHeader writes a styled section header.
func printHeader(w io.Writer, key string) {
	fmt.Fprintln(w, headerStyle.Render(i18n.T(key)))
}

// printPassword writes the generated secret itself.
func printPassword(w io.Writer, value string) {
	fmt.Fprintf(w, "%s: %s\n", labelStyle.Render(i18n.T("report.password")), passwordStyle.Render(value))
}

// printReport writes the entropy, strength band and crack-time lines of
// a strength report.
func printReport(w io.Writer, report model.EntropyReport) {
	style, ok := strengthStyles[report.Strength]
	if !ok {
		style = lipgloss.NewStyle()
	}
	fmt.Fprintf(w, "  %s: %s\n", labelStyle.Render(i18n.T("report.entropy")), i18n.T("report.entropy_value", report.Bits))
	fmt.Fprintf(w, "  %s: %s\n", labelStyle.Render(i18n.T("report.strength")), style.Render(strengthLabel(report.Strength)))
	fmt.Fprintf(w, "  %s: %s\n", labelStyle.Render(i18n.T("report.crack_time")), report.CrackTime)
}
