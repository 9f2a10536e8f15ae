package ledger

import (
	"encoding/json"
	"fmt"
)

// CategoryLimit is a per-category monthly spending limit. A category with no
// configured limit is not budget-tracked.
type CategoryLimit struct {
	Category   string `json:"category"`
	LimitMinor int64  `json:"limit_minor"`
}

// BudgetStatus classifies spend against a limit.
type BudgetStatus int

const (
	BudgetOK BudgetStatus = iota
	BudgetWarning
	BudgetOver
)

// warningThresholdPercent is the percent-used band at which a budget flips
// from ok to warning.
const warningThresholdPercent = 75

func (s BudgetStatus) String() string {
	switch s {
	case BudgetOK:
		return "ok"
	case BudgetWarning:
		return "warning"
	case BudgetOver:
		return "over"
	}
	return "unknown"
}

// MarshalJSON renders the status as its label rather than an opaque integer.
func (s BudgetStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// BudgetReport is the derived budget snapshot for one category. RemainingMinor
// goes negative when the category is over its limit.
type BudgetReport struct {
	Category       string       `json:"category"`
	LimitMinor     int64        `json:"limit_minor"`
	UsedMinor      int64        `json:"used_minor"`
	RemainingMinor int64        `json:"remaining_minor"`
	PercentUsed    int64        `json:"percent_used"`
	Status         BudgetStatus `json:"status"`
}

// CategorySpend returns the non-negative spend in the given category: the sum
// of negative amounts, negated. Income entries in the category are ignored.
func CategorySpend(entries []Entry, category string) int64 {
	var used int64
	for _, e := range entries {
		if e.Category == category && e.AmountMinor < 0 {
			used -= e.AmountMinor
		}
	}
	return used
}

// EvaluateBudget evaluates the given category against its configured limit.
// Returns ErrUnknownCategory when no limit is configured for the category;
// callers get the explicit signal rather than a silent zero-limit default.
func EvaluateBudget(entries []Entry, limits []CategoryLimit, category string) (BudgetReport, error) {
	for _, l := range limits {
		if l.Category == category {
			return evaluateLimit(entries, l), nil
		}
	}
	return BudgetReport{}, fmt.Errorf("category %q: %w", category, ErrUnknownCategory)
}

// EvaluateBudgets evaluates every configured limit, in the order the limits
// are given.
func EvaluateBudgets(entries []Entry, limits []CategoryLimit) []BudgetReport {
	reports := make([]BudgetReport, 0, len(limits))
	for _, l := range limits {
		reports = append(reports, evaluateLimit(entries, l))
	}
	return reports
}

func evaluateLimit(entries []Entry, limit CategoryLimit) BudgetReport {
	used := CategorySpend(entries, limit.Category)

	// A zero limit never divides: any spend at all counts as 100%.
	var percent int64
	switch {
	case limit.LimitMinor == 0 && used > 0:
		percent = 100
	case limit.LimitMinor == 0:
		percent = 0
	default:
		percent = Percent(used, limit.LimitMinor)
	}

	status := BudgetOK
	switch {
	case used > limit.LimitMinor:
		status = BudgetOver
	case percent >= warningThresholdPercent:
		status = BudgetWarning
	}

	return BudgetReport{
		Category:       limit.Category,
		LimitMinor:     limit.LimitMinor,
		UsedMinor:      used,
		RemainingMinor: limit.LimitMinor - used,
		PercentUsed:    percent,
		Status:         status,
	}
}
