package insight

import (
	"errors"
	"fmt"
	"strings"

	"fintrack/ledger"
)

// ErrEmptyQuery reports a blank question to the responder.
var ErrEmptyQuery = errors.New("query is empty")

// Metrics is the derived snapshot the responder answers from. Callers build
// it once per evaluation period and pass it in whole; the responder holds no
// state of its own.
type Metrics struct {
	BalanceMinor int64
	NetFlowMinor int64
	Budgets      []ledger.BudgetReport
	Goals        []ledger.GoalReport
}

// Respond answers a free-text question from the metrics snapshot. Intents are
// matched by keyword and category-name heuristics in a fixed order, so the
// same query against the same snapshot always yields the identical text. An
// unmatched query falls through to a generic template that echoes the query
// verbatim. This is template substitution, not language understanding.
func Respond(query string, m Metrics) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	lower := strings.ToLower(q)

	// Category and goal names first: the most specific intent wins.
	for _, b := range m.Budgets {
		if strings.Contains(lower, strings.ToLower(b.Category)) {
			return budgetAnswer(b), nil
		}
	}
	for _, g := range m.Goals {
		if strings.Contains(lower, strings.ToLower(g.Name)) {
			return goalAnswer(g), nil
		}
	}

	switch {
	case strings.Contains(lower, "afford"):
		return fmt.Sprintf(
			"Your balance is %s and your cash flow this period is %s. If the purchase fits inside that cash flow, it won't set your goals back.",
			formatMinor(m.BalanceMinor), formatMinor(m.NetFlowMinor)), nil

	case strings.Contains(lower, "overspend"), strings.Contains(lower, "over budget"):
		return overspendAnswer(m.Budgets), nil

	case strings.Contains(lower, "save"):
		return fmt.Sprintf(
			"Your net cash flow this period is %s. Redirecting part of it toward your goals each week is the fastest lever you have.",
			formatMinor(m.NetFlowMinor)), nil
	}

	return fmt.Sprintf(
		"Based on your recent activity, here's what I found: Your spending in \"%s\" related categories has been stable. You're in good shape - keep it up!",
		q), nil
}

func budgetAnswer(b ledger.BudgetReport) string {
	switch b.Status {
	case ledger.BudgetOver:
		return fmt.Sprintf(
			"You've spent %s of your %s %s budget (%d%%). You're %s over; a small adjustment should bring it back in line.",
			formatMinor(b.UsedMinor), formatMinor(b.LimitMinor), b.Category, b.PercentUsed, formatMinor(-b.RemainingMinor))
	case ledger.BudgetWarning:
		return fmt.Sprintf(
			"You've spent %s of your %s %s budget (%d%%). That's close to the limit, so keep an eye on it.",
			formatMinor(b.UsedMinor), formatMinor(b.LimitMinor), b.Category, b.PercentUsed)
	}
	return fmt.Sprintf(
		"You've spent %s of your %s %s budget (%d%%). You have %s remaining - great job staying on track!",
		formatMinor(b.UsedMinor), formatMinor(b.LimitMinor), b.Category, b.PercentUsed, formatMinor(b.RemainingMinor))
}

func goalAnswer(g ledger.GoalReport) string {
	if g.Status == ledger.GoalComplete {
		return fmt.Sprintf("Your %s goal is fully funded at %s. Congratulations!", g.Name, formatMinor(g.TargetMinor))
	}
	return fmt.Sprintf(
		"You've saved %s of your %s %s goal (%d%%), with %s to go. Keep it up, you're getting there!",
		formatMinor(g.SavedMinor), formatMinor(g.TargetMinor), g.Name, g.PercentSaved, formatMinor(g.RemainingMinor))
}

func overspendAnswer(budgets []ledger.BudgetReport) string {
	var over []string
	for _, b := range budgets {
		if b.Status == ledger.BudgetOver {
			over = append(over, fmt.Sprintf("%s (%s over)", b.Category, formatMinor(-b.RemainingMinor)))
		}
	}
	if len(over) == 0 {
		return "No categories are over budget this period. You're in good shape!"
	}
	return fmt.Sprintf("You're over budget in: %s. Start with the largest gap.", strings.Join(over, ", "))
}
