package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"fintrack/ledger"
)

func newAddEntryForm(categories []string, defaultDate string) *huh.Form {
	categoryOpts := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		categoryOpts[i] = huh.NewOption(c, c)
	}

	date := defaultDate

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("What the entry is for").
				Key("name").
				Placeholder("Enter a name...").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Amount").
				Description("Dollar amount (positive for income, negative for expense)").
				Key("amount").
				Placeholder("e.g. -50.00 or 100.00").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("amount is required")
					}
					if _, err := parseAmountMinor(s); err != nil {
						return fmt.Errorf("amount must be a valid dollar value")
					}
					return nil
				}),

			huh.NewInput().
				Title("Date").
				Description("Entry date (YYYY-MM-DD)").
				Key("date").
				Value(&date).
				Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					if _, err := ledger.ParseDate(s); err != nil {
						return fmt.Errorf("date must be in YYYY-MM-DD format")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Description("Select a category for the entry").
				Options(categoryOpts...).
				Key("category"),
		),
	)
}

func openAddEntryForm(m *model) (tea.Model, tea.Cmd) {
	if m.snapshot == nil {
		return m, nil
	}

	m.addEntryForm = newAddEntryForm(m.snapshot.categories(), m.asOf.Format("2006-01-02"))
	m.addEntryForm.SubmitCmd = func() tea.Msg {
		return submitAddEntryForm(*m)
	}

	m.previousSessionState = m.sessionState
	m.sessionState = addEntryState
	return m, tea.Batch(m.addEntryForm.Init(), tea.WindowSize())
}

func updateAddEntry(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.addEntryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.addEntryForm = f
	}

	if m.addEntryForm.State == huh.StateCompleted {
		m.sessionState = entriesState
		return m, cmd
	}

	if m.addEntryForm.State == huh.StateAborted {
		m.sessionState = entriesState
		return m, nil
	}

	return m, cmd
}

func addEntryView(m model) string {
	return m.addEntryForm.View()
}

// submitAddEntryForm turns the completed form into a ledger entry appended to
// the session snapshot. Nothing is persisted.
func submitAddEntryForm(m model) tea.Msg {
	name := m.addEntryForm.GetString("name")
	amountStr := m.addEntryForm.GetString("amount")
	dateStr := m.addEntryForm.GetString("date")
	category := m.addEntryForm.GetString("category")

	amount, err := parseAmountMinor(amountStr)
	if err != nil {
		return entryAddedMsg{err: err}
	}

	date, err := ledger.ParseDate(dateStr)
	if err != nil {
		return entryAddedMsg{err: err}
	}

	entry := ledger.Entry{
		ID:          m.snapshot.nextEntryID(),
		Name:        name,
		AmountMinor: amount,
		Category:    category,
		Date:        date,
	}

	log.Debug("adding entry", "name", name, "amount_minor", amount, "category", category)

	return entryAddedMsg{entry: entry}
}
