package main

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"fintrack/ledger"
)

type budgetItem struct {
	report ledger.BudgetReport
}

// Implement list.Item interface for budgetItem.
func (b budgetItem) Title() string {
	return fmt.Sprintf("%s (%d%%)", b.report.Category, b.report.PercentUsed)
}

func (b budgetItem) Description() string {
	limit := money.New(b.report.LimitMinor, money.USD).Display()
	used := money.New(b.report.UsedMinor, money.USD).Display()

	switch b.report.Status {
	case ledger.BudgetOver:
		over := money.New(-b.report.RemainingMinor, money.USD).Display()
		return fmt.Sprintf("Spent %s of %s | %s over budget", used, limit, over)
	case ledger.BudgetWarning:
		remaining := money.New(b.report.RemainingMinor, money.USD).Display()
		return fmt.Sprintf("Spent %s of %s | %s left, watch it", used, limit, remaining)
	default:
		remaining := money.New(b.report.RemainingMinor, money.USD).Display()
		return fmt.Sprintf("Spent %s of %s | %s left", used, limit, remaining)
	}
}

func (b budgetItem) FilterValue() string {
	return b.report.Category
}

// createBudgetList creates a new list model for budgets.
func createBudgetList(delegate list.DefaultDelegate) list.Model {
	budgetList := list.New([]list.Item{}, delegate, 0, 0)
	budgetList.SetShowTitle(false)
	budgetList.StatusMessageLifetime = 3 * time.Second
	return budgetList
}

// updateBudgets handles the budgets view updates.
func updateBudgets(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	// Period navigation and other keys are handled in handleKeyPress
	// so we just need to handle the list updates here
	var cmd tea.Cmd
	m.budgets, cmd = m.budgets.Update(msg)
	return m, cmd
}

// budgetsView renders the budgets view.
func budgetsView(m model) string {
	return m.budgets.View()
}
