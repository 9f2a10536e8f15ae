package main

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/ledger"
)

type entryItem struct {
	entry ledger.Entry
}

func (e entryItem) Title() string {
	return e.entry.Name
}

func (e entryItem) Description() string {
	return fmt.Sprintf("%s  %s  %s",
		e.entry.Date.Format("2006-01-02"),
		e.entry.Category,
		money.New(e.entry.AmountMinor, money.USD).Display(),
	)
}

func (e entryItem) FilterValue() string {
	return e.entry.Name
}

type entryListKeyMap struct {
	dashboard key.Binding
	newEntry  key.Binding
}

func newEntryListKeyMap() *entryListKeyMap {
	return &entryListKeyMap{
		dashboard: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "dashboard"),
		),
		newEntry: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new entry"),
		),
	}
}

func updateEntries(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		// if the list is filtering, don't process key events
		if m.entries.FilterState() != list.Filtering {
			if key.Matches(msg, m.entryListKeys.dashboard) {
				m.sessionState = dashboardState
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)

	return m, cmd
}

func entriesView(m model) string {
	header := fmt.Sprintf("Last %d days: %s\n\n",
		rollingWindowDays,
		money.New(m.rpt.rolling, money.USD).Display(),
	)
	return header + m.entries.View()
}
