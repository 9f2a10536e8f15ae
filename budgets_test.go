package main

import (
	"testing"

	"github.com/carlmjohnson/be"

	"fintrack/ledger"
)

func TestBudgetItemTitle(t *testing.T) {
	item := budgetItem{report: ledger.BudgetReport{Category: "Food", PercentUsed: 64}}
	be.Equal(t, "Food (64%)", item.Title())
}

func TestBudgetItemDescription(t *testing.T) {
	tests := []struct {
		name     string
		report   ledger.BudgetReport
		expected string
	}{
		{
			name: "within budget",
			report: ledger.BudgetReport{
				Category:       "Food",
				LimitMinor:     50000,
				UsedMinor:      32000,
				RemainingMinor: 18000,
				PercentUsed:    64,
				Status:         ledger.BudgetOK,
			},
			expected: "Spent $320.00 of $500.00 | $180.00 left",
		},
		{
			name: "warning band",
			report: ledger.BudgetReport{
				Category:       "Transport",
				LimitMinor:     30000,
				UsedMinor:      24000,
				RemainingMinor: 6000,
				PercentUsed:    80,
				Status:         ledger.BudgetWarning,
			},
			expected: "Spent $240.00 of $300.00 | $60.00 left, watch it",
		},
		{
			name: "over budget",
			report: ledger.BudgetReport{
				Category:       "Entertainment",
				LimitMinor:     15000,
				UsedMinor:      18000,
				RemainingMinor: -3000,
				PercentUsed:    120,
				Status:         ledger.BudgetOver,
			},
			expected: "Spent $180.00 of $150.00 | $30.00 over budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, budgetItem{report: tt.report}.Description())
		})
	}
}

func TestEntryItem(t *testing.T) {
	item := entryItem{entry: ledger.Entry{
		ID:          1,
		Name:        "Grocery Store",
		AmountMinor: -7823,
		Category:    "Food",
		Date:        mustDate("2026-02-15"),
	}}

	be.Equal(t, "Grocery Store", item.Title())
	be.Equal(t, "Grocery Store", item.FilterValue())
	be.Equal(t, "2026-02-15  Food  -$78.23", item.Description())
}
