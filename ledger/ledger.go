// Package ledger implements the aggregation core of fintrack: snapshot
// queries, rolling metrics, and budget/goal tracking over caller-supplied
// entries. Amounts are signed integers in currency minor units (cents);
// negative amounts are expenses, non-negative amounts are income. Every
// function is a pure function of its inputs: the package never reads the
// clock, never logs, and never retains a reference to a slice it was given.
package ledger

import (
	"fmt"
	"time"
)

// Entry is a single dated, categorized ledger record. Entries are immutable
// once created. Date carries no time component; only the calendar day is
// significant.
type Entry struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	AmountMinor int64     `json:"amount_minor"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// DateOf normalizes t to its calendar day, dropping the time component and
// timezone. All date comparisons in this package go through DateOf so that
// an entry dated "2026-02-20" compares equal regardless of how the caller
// constructed the time value.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// EntriesInWindow returns the entries whose date satisfies start <= date <= end,
// inclusive on both ends. Order is preserved as given. Returns ErrInvalidRange
// when start is after end.
func EntriesInWindow(entries []Entry, start, end time.Time) ([]Entry, error) {
	start, end = DateOf(start), DateOf(end)
	if start.After(end) {
		return nil, fmt.Errorf("window %s after %s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), ErrInvalidRange)
	}

	var out []Entry
	for _, e := range entries {
		d := DateOf(e.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// EntriesByCategory returns the entries in the given category, order preserved.
func EntriesByCategory(entries []Entry, category string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
