package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// advancePeriod advances the evaluation period by one month or year depending
// on the period type.
func advancePeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, 1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(1, 0, 0)
	}

	return reloadReports(m)
}

// retreatPeriod moves the evaluation period back by one month or year
// depending on the period type.
func retreatPeriod(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(0, -1, 0)
	}

	if m.periodType == annualPeriodType {
		m.currentPeriod = m.currentPeriod.AddDate(-1, 0, 0)
	}

	return reloadReports(m)
}

func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	if m.periodType == monthlyPeriodType {
		m.periodType = annualPeriodType
	} else {
		m.periodType = monthlyPeriodType
	}

	return reloadReports(m)
}

// reloadReports recomputes every derived view from the snapshot. All views
// share one report set, so a single recompute covers whichever state the user
// came from.
func reloadReports(m *model) (tea.Model, tea.Cmd) {
	m.previousSessionState = m.sessionState
	m.sessionState = loading
	m.loadingState.unset("reports")
	return m, m.computeReports
}
