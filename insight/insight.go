// Package insight turns ledger aggregates into ranked, human-readable
// observations, and answers free-text questions with deterministic templates.
// Rule evaluation is fixed-order and pure: the same pair of period reports
// always produces the same insights in the same order.
package insight

import (
	"encoding/json"
	"fmt"
	"sort"

	"fintrack/ledger"
)

// Kind classifies an insight. Lower values are more severe; results are
// ordered caution, then optimization, then positive.
type Kind int

const (
	KindCaution Kind = iota
	KindOptimization
	KindPositive
)

func (k Kind) String() string {
	switch k {
	case KindCaution:
		return "caution"
	case KindOptimization:
		return "optimization"
	case KindPositive:
		return "positive"
	}
	return "unknown"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Insight is a generated observation. It is produced fresh on each evaluation
// pass and never persisted.
type Insight struct {
	Kind            Kind   `json:"kind"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	SuggestedAction string `json:"suggested_action,omitempty"`
}

// Config holds the tunable rule margins.
type Config struct {
	// SavingsRateMarginPoints is the minimum percentage-point improvement in
	// savings rate before the savings-rate rule fires. Zero means any
	// positive delta fires.
	SavingsRateMarginPoints int64
	// TrendMarginPercent is the minimum relative increase in a category's
	// spend over the prior period before the trend rule fires.
	TrendMarginPercent int64
	// MaxBudgetInsights caps how many over-budget insights one evaluation
	// emits. Truncation drops the smallest overages first, so the worst
	// offenders are always shown.
	MaxBudgetInsights int
}

// DefaultConfig returns the standard margins: any savings-rate improvement,
// a 25% spend trend, and at most 3 over-budget insights.
func DefaultConfig() Config {
	return Config{
		SavingsRateMarginPoints: 0,
		TrendMarginPercent:      25,
		MaxBudgetInsights:       3,
	}
}

// PeriodReport bundles the aggregates of one evaluation period. The insight
// engine consumes these records; it never touches raw entries.
type PeriodReport struct {
	Summary         ledger.Summary
	SpendByCategory map[string]int64
	Budgets         []ledger.BudgetReport
	Goals           []ledger.GoalReport
}

// Evaluate applies the rule set to the current period, comparing against the
// prior period where a rule needs one. A nil prior skips the prior-dependent
// rules entirely rather than treating the missing period as zeroes.
//
// Rules, in priority order:
//  1. savings-rate improvement (positive)
//  2. category spend trending up (optimization)
//  3. budget exceeded, per category, capped (caution)
//  4. goal newly completed, per goal (positive)
//
// The returned slice is ordered by severity (caution, optimization, positive)
// and by rule priority within a severity band.
func Evaluate(current PeriodReport, prior *PeriodReport, cfg Config) []Insight {
	var out []Insight
	out = append(out, budgetExceededInsights(current.Budgets, cfg.MaxBudgetInsights)...)
	if prior != nil {
		if in, ok := trendingCategoryInsight(current.SpendByCategory, prior.SpendByCategory, cfg.TrendMarginPercent); ok {
			out = append(out, in)
		}
		if in, ok := savingsRateInsight(current.Summary, prior.Summary, cfg.SavingsRateMarginPoints); ok {
			out = append(out, in)
		}
		out = append(out, completedGoalInsights(current.Goals, prior.Goals)...)
	}
	return out
}

// savingsRateInsight fires when the current savings rate beats the prior one
// by more than the margin. Periods without income have no defined rate and
// never fire.
func savingsRateInsight(current, prior ledger.Summary, marginPoints int64) (Insight, bool) {
	currentRate, ok := current.SavingsRatePercent()
	if !ok {
		return Insight{}, false
	}
	priorRate, ok := prior.SavingsRatePercent()
	if !ok {
		return Insight{}, false
	}
	if currentRate-priorRate <= marginPoints {
		return Insight{}, false
	}

	return Insight{
		Kind:  KindPositive,
		Title: "Your savings rate improved",
		Body: fmt.Sprintf(
			"You saved %d%% of your income this period, up from %d%% in the prior period. Small, consistent changes are making a real difference.",
			currentRate, priorRate),
		SuggestedAction: "View savings breakdown",
	}, true
}

// trendingCategoryInsight names the category with the steepest relative spend
// increase over the prior period, when that increase meets the margin. Only
// categories with prior spend are comparable.
func trendingCategoryInsight(current, prior map[string]int64, marginPercent int64) (Insight, bool) {
	var (
		worst      string
		worstDelta int64
		found      bool
	)
	for category, spend := range current {
		priorSpend := prior[category]
		if priorSpend <= 0 || spend <= priorSpend {
			continue
		}
		delta := ledger.Percent(spend-priorSpend, priorSpend)
		if delta < marginPercent {
			continue
		}
		if !found || delta > worstDelta || (delta == worstDelta && category < worst) {
			worst, worstDelta, found = category, delta, true
		}
	}
	if !found {
		return Insight{}, false
	}

	return Insight{
		Kind:  KindOptimization,
		Title: fmt.Sprintf("%s expenses are creeping up", worst),
		Body: fmt.Sprintf(
			"You've spent %s on %s so far, trending %d%% higher than the prior period. Consider setting a weekly limit to stay on track.",
			formatMinor(current[worst]), worst, worstDelta),
		SuggestedAction: fmt.Sprintf("Review %s transactions", worst),
	}, true
}

// budgetExceededInsights emits one caution per over-budget category, keeping
// only the cap largest overages.
func budgetExceededInsights(budgets []ledger.BudgetReport, maxCount int) []Insight {
	var over []ledger.BudgetReport
	for _, b := range budgets {
		if b.Status == ledger.BudgetOver {
			over = append(over, b)
		}
	}

	sort.Slice(over, func(i, j int) bool {
		oi, oj := -over[i].RemainingMinor, -over[j].RemainingMinor
		if oi != oj {
			return oi > oj
		}
		return over[i].Category < over[j].Category
	})
	if len(over) > maxCount {
		over = over[:maxCount]
	}

	insights := make([]Insight, 0, len(over))
	for _, b := range over {
		insights = append(insights, Insight{
			Kind:  KindCaution,
			Title: fmt.Sprintf("%s budget exceeded", b.Category),
			Body: fmt.Sprintf(
				"You're %s over your %s budget this period. A small adjustment next week should bring things back in line.",
				formatMinor(-b.RemainingMinor), b.Category),
		})
	}
	return insights
}

// completedGoalInsights fires for goals that are complete now but were not in
// the prior period, matched by goal ID.
func completedGoalInsights(current, prior []ledger.GoalReport) []Insight {
	priorComplete := make(map[int64]bool, len(prior))
	for _, g := range prior {
		priorComplete[g.ID] = g.Status == ledger.GoalComplete
	}

	var insights []Insight
	for _, g := range current {
		if g.Status != ledger.GoalComplete || priorComplete[g.ID] {
			continue
		}
		insights = append(insights, Insight{
			Kind:  KindPositive,
			Title: fmt.Sprintf("%s goal is fully funded", g.Name),
			Body: fmt.Sprintf(
				"Congratulations! You've reached your %s %s savings goal. Consider redirecting that contribution toward your next priority.",
				formatMinor(g.TargetMinor), g.Name),
			SuggestedAction: "Manage goals",
		})
	}
	return insights
}

// formatMinor renders minor units as a plain dollar string for template text.
// Structured report records stay unformatted; only natural-language bodies
// use this.
func formatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s$%d.%02d", sign, minor/100, minor%100)
}
