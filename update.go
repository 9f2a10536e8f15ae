package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case snapshotLoadedMsg:
		return m.handleSnapshotLoaded(msg)

	case reportsMsg:
		return m.handleReports(msg)

	case entryAddedMsg:
		return m.handleEntryAdded(msg)

	case entryDeletedMsg:
		return m.handleEntryDeleted(msg)

	case snapshotErrorMsg:
		m.sessionState = errorState
		m.errorMsg = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case dashboardState:
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case entriesState:
		return updateEntries(msg, m)

	case budgetsState:
		return updateBudgets(msg, m)

	case goalsState:
		m.goalsView, cmd = m.goalsView.Update(msg)
		return m, cmd

	case analysisState:
		return updateAnalysis(msg, m)

	case addEntryState:
		return updateAddEntry(msg, &m)

	case configState:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
