package ledger

import (
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int64
	}{
		{name: "empty ledger", entries: nil, want: 0},
		{
			name: "mixed income and expense",
			entries: []Entry{
				{AmountMinor: 85000},
				{AmountMinor: -675},
				{AmountMinor: -4209},
			},
			want: 80116,
		},
		{
			name: "large amounts without precision loss",
			entries: []Entry{
				{AmountMinor: 1_000_000_000_000},
				{AmountMinor: 1},
			},
			want: 1_000_000_000_001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, Balance(tt.entries))
		})
	}
}

func TestRollingTotal(t *testing.T) {
	// The seven-day window ending 2026-02-24 spans 2026-02-17 through
	// 2026-02-24 inclusive.
	entries := []Entry{
		{Name: "Starbucks", AmountMinor: -675, Category: "Food", Date: day(2026, 2, 20)},
		{Name: "Paycheck", AmountMinor: 85000, Category: "Income", Date: day(2026, 2, 18)},
	}

	got, err := RollingTotal(entries, day(2026, 2, 24), 7)
	be.NilErr(t, err)
	be.Equal(t, 84325, got)
}

func TestRollingTotalBoundaries(t *testing.T) {
	entries := []Entry{
		{ID: 1, AmountMinor: 10, Date: day(2026, 2, 17)}, // window start
		{ID: 2, AmountMinor: 20, Date: day(2026, 2, 24)}, // window end
		{ID: 3, AmountMinor: 40, Date: day(2026, 2, 16)}, // one day early
		{ID: 4, AmountMinor: 80, Date: day(2026, 2, 25)}, // one day late
	}

	got, err := RollingTotal(entries, day(2026, 2, 24), 7)
	be.NilErr(t, err)
	be.Equal(t, 30, got)
}

func TestRollingTotalEmptyAndZeroWindow(t *testing.T) {
	got, err := RollingTotal(nil, day(2026, 2, 24), 7)
	be.NilErr(t, err)
	be.Equal(t, 0, got)

	// zero-day window is just the reference date itself
	entries := []Entry{
		{AmountMinor: 5, Date: day(2026, 2, 24)},
		{AmountMinor: 7, Date: day(2026, 2, 23)},
	}
	got, err = RollingTotal(entries, day(2026, 2, 24), 0)
	be.NilErr(t, err)
	be.Equal(t, 5, got)

	_, err = RollingTotal(entries, day(2026, 2, 24), -1)
	be.True(t, errors.Is(err, ErrInvalidRange))
}

func TestNetCashFlowMatchesWindowRule(t *testing.T) {
	entries := []Entry{
		{AmountMinor: 100, Date: day(2026, 2, 1)},
		{AmountMinor: -40, Date: day(2026, 2, 28)},
		{AmountMinor: 999, Date: day(2026, 3, 1)},
	}

	got, err := NetCashFlow(entries, day(2026, 2, 1), day(2026, 2, 28))
	be.NilErr(t, err)
	be.Equal(t, 60, got)

	_, err = NetCashFlow(entries, day(2026, 3, 1), day(2026, 2, 1))
	be.True(t, errors.Is(err, ErrInvalidRange))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Entry{
		{AmountMinor: 85000},
		{AmountMinor: 32000},
		{AmountMinor: -675},
		{AmountMinor: -4209},
	})

	be.Equal(t, int64(117000), s.IncomeMinor)
	be.Equal(t, int64(4884), s.ExpenseMinor)
	be.Equal(t, int64(112116), s.NetMinor)
}

func TestSavingsRatePercent(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		want     int64
		haveRate bool
	}{
		{name: "no income", summary: Summary{ExpenseMinor: 100, NetMinor: -100}, want: 0, haveRate: false},
		{name: "saved nothing", summary: Summary{IncomeMinor: 1000, ExpenseMinor: 1000, NetMinor: 0}, want: 0, haveRate: true},
		{name: "quarter saved", summary: Summary{IncomeMinor: 1000, ExpenseMinor: 750, NetMinor: 250}, want: 25, haveRate: true},
		{name: "negative rate", summary: Summary{IncomeMinor: 1000, ExpenseMinor: 1500, NetMinor: -500}, want: -50, haveRate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.summary.SavingsRatePercent()
			be.Equal(t, tt.haveRate, ok)
			be.Equal(t, tt.want, got)
		})
	}
}

func TestSpendByCategory(t *testing.T) {
	spend := SpendByCategory([]Entry{
		{AmountMinor: -675, Category: "Food"},
		{AmountMinor: -7823, Category: "Food"},
		{AmountMinor: 85000, Category: "Income"},
		{AmountMinor: -4209, Category: "Transport"},
	})

	be.Equal(t, 2, len(spend))
	be.Equal(t, int64(8498), spend["Food"])
	be.Equal(t, int64(4209), spend["Transport"])
}
