package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"fintrack/ledger"
)

// Snapshot is the session's working set: the full entry log plus the budget
// and goal configuration. It is loaded once at startup and mutated only in
// memory; nothing is ever written back.
type Snapshot struct {
	Entries []ledger.Entry
	Limits  []ledger.CategoryLimit
	Goals   []ledger.Goal
}

// snapshotFile is the on-disk shape of a data file. Dates are YYYY-MM-DD
// strings; amounts are integer minor units.
type snapshotFile struct {
	Entries []entryRecord          `json:"entries"`
	Limits  []ledger.CategoryLimit `json:"limits"`
	Goals   []ledger.Goal          `json:"goals"`
}

type entryRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AmountMinor int64  `json:"amount_minor"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// loadSnapshot reads a snapshot from the given data file. An empty path loads
// the built-in sample data.
func loadSnapshot(path string) (*Snapshot, error) {
	if path == "" {
		return sampleSnapshot(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}

	snap := &Snapshot{Limits: file.Limits, Goals: file.Goals}
	for _, rec := range file.Entries {
		date, err := ledger.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", rec.ID, err)
		}
		snap.Entries = append(snap.Entries, ledger.Entry{
			ID:          rec.ID,
			Name:        rec.Name,
			AmountMinor: rec.AmountMinor,
			Category:    rec.Category,
			Date:        date,
		})
	}

	return snap, nil
}

// nextEntryID returns an ID one past the largest in the snapshot.
func (s *Snapshot) nextEntryID() int64 {
	var maxID int64
	for _, e := range s.Entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

func (s *Snapshot) addEntry(e ledger.Entry) {
	s.Entries = append(s.Entries, e)
}

func (s *Snapshot) removeEntry(id int64) {
	for i, e := range s.Entries {
		if e.ID == id {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return
		}
	}
}

// categories returns the category names known to the snapshot, from both the
// budget configuration and the entry log, deduplicated in insertion order.
func (s *Snapshot) categories() []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range s.Limits {
		if !seen[l.Category] {
			seen[l.Category] = true
			names = append(names, l.Category)
		}
	}
	for _, e := range s.Entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			names = append(names, e.Category)
		}
	}
	return names
}

// parseAmountMinor converts a dollar string like "-6.75" or "850" to integer
// minor units without going through floating point.
func parseAmountMinor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	dollars, cents := s, "0"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		dollars, cents = s[:i], s[i+1:]
	}
	if dollars == "" {
		dollars = "0"
	}
	if len(cents) > 2 {
		return 0, fmt.Errorf("amount %q has sub-cent precision", s)
	}
	for len(cents) < 2 {
		cents += "0"
	}

	var minor int64
	for _, r := range dollars + cents {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		minor = minor*10 + int64(r-'0')
	}

	if negative {
		minor = -minor
	}
	return minor, nil
}

// sampleSnapshot returns the built-in demo data used when no --data file is
// given.
func sampleSnapshot() *Snapshot {
	return &Snapshot{
		Entries: []ledger.Entry{
			{ID: 1, Name: "Starbucks", AmountMinor: -675, Category: "Food", Date: mustDate("2026-02-20")},
			{ID: 2, Name: "Paycheck", AmountMinor: 85000, Category: "Income", Date: mustDate("2026-02-18")},
			{ID: 3, Name: "Gas Station", AmountMinor: -4209, Category: "Transport", Date: mustDate("2026-02-17")},
			{ID: 4, Name: "Netflix", AmountMinor: -1599, Category: "Entertainment", Date: mustDate("2026-02-16")},
			{ID: 5, Name: "Grocery Store", AmountMinor: -7823, Category: "Food", Date: mustDate("2026-02-15")},
			{ID: 6, Name: "Freelance Payment", AmountMinor: 32000, Category: "Income", Date: mustDate("2026-02-14")},
			{ID: 7, Name: "Electric Bill", AmountMinor: -11250, Category: "Utilities", Date: mustDate("2026-02-13")},
			{ID: 8, Name: "Coffee Shop", AmountMinor: -540, Category: "Food", Date: mustDate("2026-02-12")},
		},
		Limits: []ledger.CategoryLimit{
			{Category: "Rent", LimitMinor: 120000},
			{Category: "Utilities", LimitMinor: 20000},
			{Category: "Food", LimitMinor: 50000},
			{Category: "Transport", LimitMinor: 30000},
			{Category: "Entertainment", LimitMinor: 15000},
			{Category: "Dining Out", LimitMinor: 20000},
		},
		Goals: []ledger.Goal{
			{ID: 1, Name: "Debt Payoff", SavedMinor: 840000, TargetMinor: 1200000},
			{ID: 2, Name: "Vacation", SavedMinor: 120000, TargetMinor: 300000},
			{ID: 3, Name: "House Down Payment", SavedMinor: 2400000, TargetMinor: 6000000},
			{ID: 4, Name: "New Car", SavedMinor: 1500000, TargetMinor: 1500000},
			{ID: 5, Name: "Emergency Fund", SavedMinor: 78000, TargetMinor: 200000},
		},
	}
}

func mustDate(s string) time.Time {
	t, err := ledger.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
