package ledger

import (
	"fmt"
	"time"
)

// Balance sums every entry's amount with no window: the lifetime-to-date
// total of the snapshot. An empty snapshot has a balance of zero.
func Balance(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.AmountMinor
	}
	return total
}

// RollingTotal sums amounts for entries dated within the windowDays-day
// window ending at referenceDate, inclusive on both ends. The reference date
// is always caller-supplied; there is no implicit "now". windowDays must be
// non-negative.
func RollingTotal(entries []Entry, referenceDate time.Time, windowDays int) (int64, error) {
	if windowDays < 0 {
		return 0, fmt.Errorf("window of %d days: %w", windowDays, ErrInvalidRange)
	}

	end := DateOf(referenceDate)
	start := end.AddDate(0, 0, -windowDays)
	return NetCashFlow(entries, start, end)
}

// NetCashFlow sums amounts for entries dated within [start, end], using the
// identical inclusion rule as EntriesInWindow.
func NetCashFlow(entries []Entry, start, end time.Time) (int64, error) {
	windowed, err := EntriesInWindow(entries, start, end)
	if err != nil {
		return 0, err
	}
	return Balance(windowed), nil
}

// Summary splits a set of entries into non-negative income and expense sums.
// ExpenseMinor is the negated sum of negative amounts, so both fields are
// always >= 0 and NetMinor = IncomeMinor - ExpenseMinor.
type Summary struct {
	IncomeMinor  int64 `json:"income_minor"`
	ExpenseMinor int64 `json:"expense_minor"`
	NetMinor     int64 `json:"net_minor"`
}

// Summarize computes the income/expense split of the given entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		if e.AmountMinor < 0 {
			s.ExpenseMinor -= e.AmountMinor
		} else {
			s.IncomeMinor += e.AmountMinor
		}
	}
	s.NetMinor = s.IncomeMinor - s.ExpenseMinor
	return s
}

// SavingsRatePercent returns (income - expense) / income as a rounded whole
// percentage. The second return is false when the period has no income, in
// which case no rate is defined.
func (s Summary) SavingsRatePercent() (int64, bool) {
	if s.IncomeMinor == 0 {
		return 0, false
	}
	return Percent(s.NetMinor, s.IncomeMinor), true
}

// SpendByCategory returns the non-negative spend (negated expense sum) per
// category. Categories with only income entries do not appear.
func SpendByCategory(entries []Entry) map[string]int64 {
	spend := make(map[string]int64)
	for _, e := range entries {
		if e.AmountMinor < 0 {
			spend[e.Category] -= e.AmountMinor
		}
	}
	return spend
}
