// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal user interface for
// Fortress. This file defines the shared lipgloss styles used across
// the different views to ensure a consistent look and feel.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fortresspw/fortress/internal/model"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

// Styles for the various UI components.
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(0).Foreground(colorHighlight)

	passwordStyle = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	statusStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
)

// strengthColors maps each strength band to its display color.
var strengthColors = map[model.Strength]lipgloss.Color{
	model.StrengthVeryWeak:   lipgloss.Color("196"),
	model.StrengthWeak:       lipgloss.Color("208"),
	model.StrengthFair:       lipgloss.Color("220"),
	model.StrengthStrong:     lipgloss.Color("40"),
	model.StrengthVeryStrong: lipgloss.Color("51"),
}

// strengthStyle returns the foreground style for a strength band.
func strengthStyle(s model.Strength) lipgloss.Style {
	if c, ok := strengthColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}

// meterWidth is the number of segments in the strength meter.
const meterWidth = 16

// strengthMeter renders a horizontal gauge for an entropy value. The
// meter is full at 128 bits, the Very Strong boundary.
func strengthMeter(bits float64, strength model.Strength) string {
	filled := int(bits / 128 * meterWidth)
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 1 && bits > 0 {
		filled = 1
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	return strengthStyle(strength).Render(bar)
}
