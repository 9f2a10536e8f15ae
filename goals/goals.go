// Package goals renders savings goal progress as a table.
package goals

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fintrack/ledger"
)

type Colors struct {
	Primary string
}

type Model struct {
	goalTable table.Model
}

func New(colors Colors) Model {
	goalTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Goal", Width: 22},
			{Title: "Saved", Width: 12},
			{Title: "Target", Width: 12},
			{Title: "Remaining", Width: 12},
			{Title: "Progress", Width: 10},
			{Title: "Status", Width: 12},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	goalTable.SetStyles(tableStyle)

	return Model{goalTable: goalTable}
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.goalTable.Focus()
	} else {
		m.goalTable.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.goalTable.SetHeight(height)
	m.goalTable.SetWidth(width)
}

func (m *Model) SetGoals(reports []ledger.GoalReport) {
	rows := make([]table.Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, table.Row{
			r.Name,
			money.New(r.SavedMinor, money.USD).Display(),
			money.New(r.TargetMinor, money.USD).Display(),
			money.New(r.RemainingMinor, money.USD).Display(),
			fmt.Sprintf("%d%%", r.PercentSaved),
			r.Status.String(),
		})
	}

	m.goalTable.SetRows(rows)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.goalTable, cmd = m.goalTable.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.goalTable.View()
}
