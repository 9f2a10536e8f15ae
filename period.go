package main

import (
	"fmt"
	"time"

	"fintrack/ledger"
)

// Period is an evaluation window with inclusive date-only bounds, matching the
// window rule the ledger queries use.
type Period struct {
	start time.Time
	end   time.Time
}

func (p *Period) String() string {
	return fmt.Sprintf("%s - %s", p.start.Format("2006-01-02"), p.end.Format("2006-01-02"))
}

func (p *Period) startDate() string {
	return p.start.Format("2006-01-02")
}

func (p *Period) endDate() string {
	return p.end.Format("2006-01-02")
}

func (p *Period) setPeriod(current time.Time, periodType string) {
	current = ledger.DateOf(current)
	switch periodType {
	case annualPeriodType:
		p.start = time.Date(current.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		p.end = time.Date(current.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	default:
		// default to month
		p.start = time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC)
		p.end = time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
}

// previous returns the immediately preceding period of the same type, the
// comparison window for the prior-period insight rules.
func (p Period) previous(periodType string) Period {
	var prior Period
	switch periodType {
	case annualPeriodType:
		prior.setPeriod(p.start.AddDate(-1, 0, 0), periodType)
	default:
		prior.setPeriod(p.start.AddDate(0, -1, 0), periodType)
	}
	return prior
}
