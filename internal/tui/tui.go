// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// This file, tui.go, is the main entry point for the TUI, containing
// the top-level model that acts as a router to the sub-views.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fortresspw/fortress/internal/config"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/logging"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	generateView
	passphraseView
	checkView
	languageView
)

// languageChangedMsg signals that the language changed and menu labels
// must be rebuilt.
type languageChangedMsg struct{}

// mainModel is the top-level model for the TUI. It acts as a state
// machine and router, delegating updates and view rendering to the
// currently active sub-model.
type mainModel struct {
	state    viewState
	appCfg   config.Config
	menu     menuModel
	gen      generateModel
	phrase   passphraseModel
	check    checkModel
	language languageModel
	width    int
	height   int
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item the cursor is pointing at.
}

// menuChoices builds the localized menu entries.
func menuChoices() []string {
	return []string{
		i18n.T("menu.generate_password"),
		i18n.T("menu.generate_passphrase"),
		i18n.T("menu.check_strength"),
		i18n.T("menu.language"),
		i18n.T("menu.quit"),
	}
}

// initialModel creates the starting state of the TUI, beginning at the
// main menu.
func initialModel(appCfg config.Config) mainModel {
	return mainModel{
		state:    menuView,
		appCfg:   appCfg,
		menu:     menuModel{choices: menuChoices()},
		gen:      newGenerateModel(appCfg),
		phrase:   newPassphraseModel(appCfg),
		check:    newCheckModel(appCfg),
		language: newLanguageModel(appCfg.Language),
	}
}

// Run launches the interactive TUI and blocks until the user quits.
func Run(appCfg config.Config) error {
	p := tea.NewProgram(initialModel(appCfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init is the first function called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case languageChangedMsg:
		m.menu.choices = menuChoices()
		return m, nil
	}

	switch m.state {
	case menuView:
		return m.updateMenu(msg)
	case generateView:
		var cmd tea.Cmd
		m.gen, cmd = m.gen.Update(msg)
		if m.gen.done {
			m.gen.done = false
			m.state = menuView
		}
		return m, cmd
	case passphraseView:
		var cmd tea.Cmd
		m.phrase, cmd = m.phrase.Update(msg)
		if m.phrase.done {
			m.phrase.done = false
			m.state = menuView
		}
		return m, cmd
	case checkView:
		var cmd tea.Cmd
		m.check, cmd = m.check.Update(msg)
		if m.check.done {
			m.check.done = false
			m.state = menuView
		}
		return m, cmd
	case languageView:
		return m.updateLanguage(msg)
	}
	return m, nil
}

// updateMenu handles key presses on the main menu.
func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case "down", "j":
		if m.menu.cursor < len(m.menu.choices)-1 {
			m.menu.cursor++
		}
	case "enter":
		switch m.menu.cursor {
		case 0:
			m.state = generateView
			m.gen = newGenerateModel(m.appCfg)
		case 1:
			m.state = passphraseView
			m.phrase = newPassphraseModel(m.appCfg)
		case 2:
			m.state = checkView
			m.check = newCheckModel(m.appCfg)
			return m, m.check.Focus()
		case 3:
			m.state = languageView
		case 4:
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the active sub-view.
func (m mainModel) View() string {
	var body string
	switch m.state {
	case menuView:
		body = m.viewMenu()
	case generateView:
		body = m.gen.View()
	case passphraseView:
		body = m.phrase.View()
	case checkView:
		body = m.check.View()
	case languageView:
		body = m.viewLanguage()
	}
	return docStyle.Render(body)
}

// viewMenu renders the main menu.
func (m mainModel) viewMenu() string {
	s := titleStyle.Render(i18n.T("menu.title")) + "  " + helpStyle.Render(i18n.T("app.tagline")) + "\n\n"
	for i, choice := range m.menu.choices {
		if i == m.menu.cursor {
			s += selectedItemStyle.Render("> "+choice) + "\n"
		} else {
			s += itemStyle.Render(choice) + "\n"
		}
	}
	s += "\n" + helpStyle.Render(i18n.T("menu.help"))
	return s
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	codes  []string
	names  []string
	cursor int
}

func newLanguageModel(active string) languageModel {
	m := languageModel{
		codes: []string{"en", "de"},
		names: []string{"English", "Deutsch"},
	}
	for i, c := range m.codes {
		if c == active {
			m.cursor = i
		}
	}
	return m
}

// updateLanguage handles the language selection menu. Selecting a
// language switches the localizer and persists the preference.
func (m mainModel) updateLanguage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = menuView
	case "up", "k":
		if m.language.cursor > 0 {
			m.language.cursor--
		}
	case "down", "j":
		if m.language.cursor < len(m.language.codes)-1 {
			m.language.cursor++
		}
	case "enter":
		lang := m.language.codes[m.language.cursor]
		i18n.SetLang(lang)
		m.appCfg.Language = lang
		if err := config.WriteConfigFile(&m.appCfg, false); err != nil {
			logging.Warnf("could not persist language preference: %v", err)
		}
		m.state = menuView
		return m, func() tea.Msg { return languageChangedMsg{} }
	}
	return m, nil
}

// viewLanguage renders the language selection menu.
func (m mainModel) viewLanguage() string {
	s := titleStyle.Render(i18n.T("language.title")) + "\n\n"
	for i, name := range m.language.names {
		if i == m.language.cursor {
			s += selectedItemStyle.Render("> "+name) + "\n"
		} else {
			s += itemStyle.Render(name) + "\n"
		}
	}
	s += "\n" + helpStyle.Render(i18n.T("menu.help"))
	return s
}
