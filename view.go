package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case dashboardState:
		b.WriteString(m.dashboard.View())
	case entriesState:
		b.WriteString(entriesView(m))
	case budgetsState:
		b.WriteString(budgetsView(m))
	case goalsState:
		b.WriteString(m.goalsView.View())
	case analysisState:
		b.WriteString(analysisView(m))
	case addEntryState:
		b.WriteString(addEntryView(m))
	case configState:
		b.WriteString(m.configView.View())
	case loading:
		b.WriteString(fmt.Sprintf("%s Loading data...", m.loadingSpinner.View()))
	case errorState:
		b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("%s - 'q' to quit", m.errorMsg)))
		return m.styles.docStyle.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	var b strings.Builder

	if m.period.start.IsZero() {
		b.WriteString(m.styles.titleStyle.Render(fmt.Sprintf("fintrack | %s", m.sessionState.String())))
		return b.String()
	}

	b.WriteString(m.styles.titleStyle.Render(
		fmt.Sprintf("fintrack | %s | %s | %s",
			m.sessionState.String(),
			m.period.String(),
			m.periodType,
		),
	))

	return b.String()
}
