package main

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/insight"
	"fintrack/ledger"
)

const rollingWindowDays = 7

// reports holds everything derived from the snapshot for one evaluation
// period: current and prior period aggregates, insights, and the responder's
// metrics.
type reports struct {
	current  insight.PeriodReport
	prior    *insight.PeriodReport
	insights []insight.Insight
	metrics  insight.Metrics

	balance int64
	rolling int64
	asOf    time.Time
	period  Period
}

// buildReports derives all view data from the snapshot. periodDate selects
// the evaluation window; asOf anchors the rolling total. The current and prior
// period aggregates are computed concurrently; integer sums are associative so
// the split changes nothing.
func buildReports(snap *Snapshot, periodDate, asOf time.Time, periodType string, cfg insight.Config) (reports, error) {
	var period Period
	period.setPeriod(periodDate, periodType)
	priorPeriod := period.previous(periodType)

	var (
		r            reports
		priorReport  insight.PeriodReport
		priorEntries int
	)

	var g errgroup.Group
	g.Go(func() error {
		current, err := periodReport(snap, period, true)
		if err != nil {
			return err
		}
		r.current = current
		return nil
	})
	g.Go(func() error {
		windowed, err := ledger.EntriesInWindow(snap.Entries, priorPeriod.start, priorPeriod.end)
		if err != nil {
			return err
		}
		priorEntries = len(windowed)
		if priorEntries == 0 {
			return nil
		}
		priorReport, err = periodReport(snap, priorPeriod, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return reports{}, fmt.Errorf("building period reports: %w", err)
	}

	// A prior period with no entries means no prior data: the comparative
	// insight rules are skipped rather than fed zeroes.
	if priorEntries > 0 {
		r.prior = &priorReport
	}

	r.insights = insight.Evaluate(r.current, r.prior, cfg)
	r.balance = ledger.Balance(snap.Entries)

	rolling, err := ledger.RollingTotal(snap.Entries, asOf, rollingWindowDays)
	if err != nil {
		return reports{}, err
	}
	r.rolling = rolling

	r.metrics = insight.Metrics{
		BalanceMinor: r.balance,
		NetFlowMinor: r.current.Summary.NetMinor,
		Budgets:      r.current.Budgets,
		Goals:        r.current.Goals,
	}
	r.asOf = asOf
	r.period = period

	return r, nil
}

// periodReport aggregates one window of the snapshot. Goals are session-scoped
// rather than period-scoped, so only the current report carries them; the
// prior report's goal list stays empty and any funded goal surfaces its
// completion insight.
func periodReport(snap *Snapshot, period Period, withGoals bool) (insight.PeriodReport, error) {
	windowed, err := ledger.EntriesInWindow(snap.Entries, period.start, period.end)
	if err != nil {
		return insight.PeriodReport{}, err
	}

	report := insight.PeriodReport{
		Summary:         ledger.Summarize(windowed),
		SpendByCategory: ledger.SpendByCategory(windowed),
		Budgets:         ledger.EvaluateBudgets(windowed, snap.Limits),
	}

	if withGoals {
		goals, err := ledger.EvaluateGoals(snap.Goals)
		if err != nil {
			return insight.PeriodReport{}, err
		}
		report.Goals = goals
	}

	return report, nil
}

// entriesNewestFirst returns the period's entries sorted by date descending,
// ties broken by ID descending so newly added entries surface on top.
func entriesNewestFirst(entries []ledger.Entry, period Period) ([]ledger.Entry, error) {
	windowed, err := ledger.EntriesInWindow(entries, period.start, period.end)
	if err != nil {
		return nil, err
	}

	sort.Slice(windowed, func(i, j int) bool {
		if !windowed[i].Date.Equal(windowed[j].Date) {
			return windowed[i].Date.After(windowed[j].Date)
		}
		return windowed[i].ID > windowed[j].ID
	})

	return windowed, nil
}
