package main

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"fintrack/ledger"
)

// Message types for the snapshot and report pipeline.
type (
	snapshotLoadedMsg struct {
		snapshot *Snapshot
	}

	reportsMsg struct {
		r reports
	}

	snapshotErrorMsg struct {
		err error
	}

	entryAddedMsg struct {
		entry ledger.Entry
		err   error
	}

	entryDeletedMsg struct {
		id   int64
		name string
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.dashboard.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.entries.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.budgets.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.goalsView.SetSize(msg.Width-h, msg.Height-v-3)
	m.configView.SetSize(msg.Width-h, msg.Height-v-3)
	m.askInput.Width = msg.Width - h - 4

	m.help.Width = msg.Width

	if m.addEntryForm != nil {
		m.addEntryForm = m.addEntryForm.WithHeight(msg.Height - 5).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleSnapshotLoaded(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	m.snapshot = msg.snapshot
	m.loadingState.set("snapshot")
	log.Debug("snapshot loaded",
		"entries", len(msg.snapshot.Entries),
		"limits", len(msg.snapshot.Limits),
		"goals", len(msg.snapshot.Goals))

	return m, m.computeReports
}

func (m model) handleReports(msg reportsMsg) (tea.Model, tea.Cmd) {
	m.rpt = msg.r
	m.period = msg.r.period

	m.dashboard.SetBalance(msg.r.balance)
	m.dashboard.SetRollingTotal(msg.r.rolling, rollingWindowDays)
	m.dashboard.SetSummary(msg.r.current.Summary)
	m.dashboard.SetSpendByCategory(msg.r.current.SpendByCategory)
	m.dashboard.SetBudgets(msg.r.current.Budgets)
	m.dashboard.SetGoals(msg.r.current.Goals)

	m.goalsView.SetGoals(msg.r.current.Goals)

	entriesCmd := m.setEntryItems()
	budgetsCmd := m.setBudgetItems(msg.r.current.Budgets)

	m.loadingState.set("reports")
	m.sessionState = m.checkIfLoading()

	return m, tea.Batch(entriesCmd, budgetsCmd, tea.WindowSize())
}

func (m *model) setEntryItems() tea.Cmd {
	windowed, err := entriesNewestFirst(m.snapshot.Entries, m.period)
	if err != nil {
		log.Error("sorting entries", "error", err)
		return nil
	}

	items := make([]list.Item, len(windowed))
	for i, e := range windowed {
		items[i] = entryItem{entry: e}
	}

	m.dashboard.SetEntryCount(len(items))

	return m.entries.SetItems(items)
}

func (m *model) setBudgetItems(budgetReports []ledger.BudgetReport) tea.Cmd {
	items := make([]list.Item, len(budgetReports))
	for i, r := range budgetReports {
		items[i] = budgetItem{report: r}
	}
	return m.budgets.SetItems(items)
}

func (m model) handleEntryAdded(msg entryAddedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.entries.NewStatusMessage("Error adding entry: " + msg.err.Error())
	}

	m.snapshot.addEntry(msg.entry)
	m.loadingState.unset("reports")

	return m, tea.Batch(m.computeReports,
		m.entries.NewStatusMessage("Added "+msg.entry.Name),
	)
}

func (m model) handleEntryDeleted(msg entryDeletedMsg) (tea.Model, tea.Cmd) {
	m.snapshot.removeEntry(msg.id)
	m.loadingState.unset("reports")

	return m, tea.Batch(m.computeReports,
		m.entries.NewStatusMessage("Deleted "+msg.name),
	)
}

// Commands.
func (m model) loadSnapshot() tea.Msg {
	snap, err := loadSnapshot(m.cfg.Data)
	if err != nil {
		return snapshotErrorMsg{err: err}
	}

	return snapshotLoadedMsg{snapshot: snap}
}

func (m model) computeReports() tea.Msg {
	r, err := buildReports(m.snapshot, m.currentPeriod, m.asOf, m.periodType, insightConfig())
	if err != nil {
		return snapshotErrorMsg{err: err}
	}

	return reportsMsg{r: r}
}
