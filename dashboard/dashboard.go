// Package dashboard renders the summary view: headline cards for balance,
// cash flow, budgets and goals, plus a spending breakdown table. It holds
// only derived report data; all arithmetic happens in the ledger package.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fintrack/ledger"
)

var titleCaser = cases.Title(language.English)

// Colors configures the dashboard accents.
type Colors struct {
	Income  string
	Expense string
	Muted   string
}

// Model defines the state for the dashboard widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	balance     int64
	rolling     int64
	rollingDays int
	summary     ledger.Summary
	spend       map[string]int64
	budgets     []ledger.BudgetReport
	goals       []ledger.GoalReport
	entryCount  int
}

type Styles struct {
	IncomeStyle lipgloss.Style
	SpentStyle  lipgloss.Style
	MutedStyle  lipgloss.Style
	CardStyle   lipgloss.Style
	HeaderStyle lipgloss.Style
}

func defaultStyles(colors Colors) Styles {
	return Styles{
		IncomeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(colors.Income, "#00ff00"))),
		SpentStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(colors.Expense, "#ff0000"))),
		MutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(colors.Muted, "#7f7d78"))),
		CardStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		HeaderStyle: lipgloss.NewStyle().Bold(true),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func New(colors Colors) Model {
	m := Model{
		Styles:   defaultStyles(colors),
		Viewport: viewport.New(0, 20),
		spend:    map[string]int64{},
	}

	m.UpdateViewport()

	return m
}

func (m *Model) SetBalance(minor int64) {
	m.balance = minor
	m.UpdateViewport()
}

func (m *Model) SetRollingTotal(minor int64, days int) {
	m.rolling = minor
	m.rollingDays = days
	m.UpdateViewport()
}

func (m *Model) SetSummary(s ledger.Summary) {
	m.summary = s
	m.UpdateViewport()
}

func (m *Model) SetSpendByCategory(spend map[string]int64) {
	m.spend = spend
	m.UpdateViewport()
}

func (m *Model) SetBudgets(budgets []ledger.BudgetReport) {
	m.budgets = budgets
	m.UpdateViewport()
}

func (m *Model) SetGoals(goals []ledger.GoalReport) {
	m.goals = goals
	m.UpdateViewport()
}

func (m *Model) SetEntryCount(n int) {
	m.entryCount = n
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func display(minor int64) string {
	return money.New(minor, money.USD).Display()
}

func (m *Model) UpdateViewport() {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.balanceCard(),
		m.cashFlowCard(),
		m.budgetCard(),
		m.goalCard(),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			cards,
			m.breakdownView(),
		),
	)
}

func (m Model) balanceCard() string {
	style := m.Styles.IncomeStyle
	if m.balance < 0 {
		style = m.Styles.SpentStyle
	}

	body := fmt.Sprintf("%s\n%s\n%s",
		m.Styles.HeaderStyle.Render("Total Balance"),
		style.Render(display(m.balance)),
		m.Styles.MutedStyle.Render(fmt.Sprintf("%d transactions", m.entryCount)),
	)
	return m.Styles.CardStyle.Render(body)
}

func (m Model) cashFlowCard() string {
	net := m.summary.NetMinor
	style := m.Styles.IncomeStyle
	if net < 0 {
		style = m.Styles.SpentStyle
	}

	rollingLine := ""
	if m.rollingDays > 0 {
		rollingLine = m.Styles.MutedStyle.Render(
			fmt.Sprintf("last %d days: %s", m.rollingDays, display(m.rolling)))
	}

	body := fmt.Sprintf("%s\n%s\n%s",
		m.Styles.HeaderStyle.Render("Cash Flow"),
		style.Render(display(net)),
		rollingLine,
	)
	return m.Styles.CardStyle.Render(body)
}

func (m Model) budgetCard() string {
	over := 0
	for _, b := range m.budgets {
		if b.Status == ledger.BudgetOver {
			over++
		}
	}

	status := "all on track"
	if over > 0 {
		status = fmt.Sprintf("%d over budget", over)
	}

	body := fmt.Sprintf("%s\n%d categories\n%s",
		m.Styles.HeaderStyle.Render("Budgets"),
		len(m.budgets),
		m.Styles.MutedStyle.Render(status),
	)
	return m.Styles.CardStyle.Render(body)
}

func (m Model) goalCard() string {
	complete := 0
	for _, g := range m.goals {
		if g.Status == ledger.GoalComplete {
			complete++
		}
	}

	body := fmt.Sprintf("%s\n%d of %d funded\n%s",
		m.Styles.HeaderStyle.Render("Goals"),
		complete,
		len(m.goals),
		m.Styles.MutedStyle.Render("savings goals"),
	)
	return m.Styles.CardStyle.Render(body)
}

// breakdownView renders per-category spend with its share of the period's
// total, largest first.
func (m Model) breakdownView() string {
	rows := m.breakdownRows()
	if len(rows) == 0 {
		return ""
	}

	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.HeaderStyle.Render("Spending Breakdown"),
			table.New(
				table.WithColumns([]table.Column{
					{Title: "Category", Width: 20},
					{Title: "Total Spent", Width: 15},
					{Title: "% of Total", Width: 10},
				}),
				table.WithRows(rows),
				table.WithHeight(len(rows)+1),
			).View(),
		),
	)
}

func (m Model) breakdownRows() []table.Row {
	var total int64
	for _, spent := range m.spend {
		total += spent
	}
	if total == 0 {
		return nil
	}

	type categorySpend struct {
		name  string
		spent int64
	}
	spends := make([]categorySpend, 0, len(m.spend))
	for category, spent := range m.spend {
		spends = append(spends, categorySpend{name: category, spent: spent})
	}

	// largest spend first, name breaks ties for stable output
	sort.Slice(spends, func(i, j int) bool {
		if spends[i].spent != spends[j].spent {
			return spends[i].spent > spends[j].spent
		}
		return spends[i].name < spends[j].name
	})

	rows := make([]table.Row, len(spends))
	for i, cs := range spends {
		rows[i] = table.Row{
			titleCaser.String(cs.name),
			display(cs.spent),
			fmt.Sprintf("%d%%", ledger.Percent(cs.spent, total)),
		}
	}

	return rows
}
