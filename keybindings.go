package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	dashboard      key.Binding
	entries        key.Binding
	budgets        key.Binding
	goals          key.Binding
	analysis       key.Binding
	settings       key.Binding
	newEntry       key.Binding
	nextPeriod     key.Binding
	previousPeriod key.Binding
	switchPeriod   key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.dashboard,
		km.entries,
		km.budgets,
		km.goals,
		km.analysis,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.dashboard,
			km.entries,
			km.budgets,
			km.goals,
			km.analysis,
			km.settings,
			km.quit,
			km.fullHelp,
		},
		{
			km.newEntry,
			km.nextPeriod,
			km.previousPeriod,
			km.switchPeriod,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		dashboard: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "dashboard"),
		),
		entries: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		budgets: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "budgets"),
		),
		goals: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "goals"),
		),
		analysis: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "analysis"),
		),
		settings: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "settings"),
		),
		newEntry: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new entry"),
		),
		nextPeriod: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next period"),
		),
		previousPeriod: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous period"),
		),
		switchPeriod: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch range"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms or the ask box
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle navigation keys
	if model, cmd := handleNavigationKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && !isTyping(m) {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	return m, nil
}

// isTyping reports whether a text input currently owns the keyboard.
func isTyping(m *model) bool {
	if m.sessionState == analysisState && m.askInput.Focused() {
		return true
	}

	if m.sessionState == entriesState && m.entries.FilterState() == list.Filtering {
		return true
	}

	return m.addEntryForm != nil && m.addEntryForm.State == huh.StateNormal
}

func isInputBlocked(m *model) bool {
	if isTyping(m) {
		return true
	}

	return m.sessionState == loading
}

func handleNavigationKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.nextPeriod):
		return advancePeriod(m)
	case key.Matches(msg, m.keys.previousPeriod):
		return retreatPeriod(m)
	case key.Matches(msg, m.keys.switchPeriod):
		return switchPeriodType(m)
	}

	return m, nil
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.dashboard):
		if m.sessionState != dashboardState {
			m.previousSessionState = m.sessionState
			m.sessionState = dashboardState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.entries):
		if m.sessionState != entriesState {
			m.previousSessionState = m.sessionState
			m.sessionState = entriesState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.budgets):
		if m.sessionState != budgetsState {
			m.previousSessionState = m.sessionState
			m.sessionState = budgetsState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.goals):
		if m.sessionState != goalsState {
			m.previousSessionState = m.sessionState
			m.goalsView.SetFocus(true)
			m.sessionState = goalsState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.analysis):
		if m.sessionState != analysisState {
			m.previousSessionState = m.sessionState
			m.sessionState = analysisState
			return m, m.askInput.Focus()
		}

	case key.Matches(msg, m.keys.settings):
		if m.sessionState != configState {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.newEntry):
		if m.sessionState == entriesState || m.sessionState == dashboardState {
			return openAddEntryForm(m)
		}

	case key.Matches(msg, m.keys.fullHelp):
		if m.sessionState != entriesState {
			m.help.ShowAll = !m.help.ShowAll
			return m, tea.WindowSize()
		}
	}

	return m, nil
}

// handleEscape backs out of the current view toward the dashboard.
func handleEscape(m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == addEntryState {
		log.Debug("handling escape in add entry state")
		m.previousSessionState = dashboardState
		m.sessionState = entriesState
		if m.addEntryForm != nil {
			m.addEntryForm.State = huh.StateAborted
		}
		return m, nil
	}

	if m.sessionState == analysisState && m.askInput.Focused() {
		m.askInput.Blur()
		return m, nil
	}

	// let the list handle escape while the user is filtering
	if m.sessionState == entriesState && m.entries.FilterState() == list.Filtering {
		log.Debug("handling escape in entries filtering")
		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(tea.KeyMsg{Type: tea.KeyEsc})
		return m, cmd
	}

	m.previousSessionState = m.sessionState
	m.sessionState = dashboardState
	return m, nil
}
