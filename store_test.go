package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"

	"fintrack/ledger"
)

func TestParseAmountMinor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		expectErr bool
	}{
		{name: "dollars and cents", input: "6.75", expected: 675},
		{name: "negative", input: "-6.75", expected: -675},
		{name: "explicit plus", input: "+12.00", expected: 1200},
		{name: "whole dollars", input: "850", expected: 85000},
		{name: "single cent digit", input: "3.5", expected: 350},
		{name: "cents only", input: ".99", expected: 99},
		{name: "surrounding whitespace", input: "  42.10  ", expected: 4210},
		{name: "zero", input: "0", expected: 0},
		{name: "empty", input: "", expectErr: true},
		{name: "sub-cent precision", input: "1.005", expectErr: true},
		{name: "not a number", input: "abc", expectErr: true},
		{name: "embedded comma", input: "1,200", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmountMinor(tt.input)
			if tt.expectErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadSnapshotDefaultsToSample(t *testing.T) {
	snap, err := loadSnapshot("")
	be.NilErr(t, err)

	be.Equal(t, 8, len(snap.Entries))
	be.Equal(t, 6, len(snap.Limits))
	be.Equal(t, 5, len(snap.Goals))
}

func TestLoadSnapshotFromFile(t *testing.T) {
	data := `{
		"entries": [
			{"id": 1, "name": "Paycheck", "amount_minor": 85000, "category": "Income", "date": "2026-02-18"},
			{"id": 2, "name": "Groceries", "amount_minor": -7823, "category": "Food", "date": "2026-02-15"}
		],
		"limits": [
			{"category": "Food", "limit_minor": 50000}
		],
		"goals": [
			{"id": 1, "name": "Vacation", "saved_minor": 120000, "target_minor": 300000}
		]
	}`

	path := filepath.Join(t.TempDir(), "data.json")
	be.NilErr(t, os.WriteFile(path, []byte(data), 0o600))

	snap, err := loadSnapshot(path)
	be.NilErr(t, err)

	be.Equal(t, 2, len(snap.Entries))
	be.Equal(t, "Paycheck", snap.Entries[0].Name)
	be.Equal(t, int64(85000), snap.Entries[0].AmountMinor)
	be.Equal(t, mustDate("2026-02-18"), snap.Entries[0].Date)
	be.Equal(t, 1, len(snap.Limits))
	be.Equal(t, 1, len(snap.Goals))
}

func TestLoadSnapshotBadDate(t *testing.T) {
	data := `{"entries": [{"id": 7, "name": "Bad", "amount_minor": -100, "category": "Food", "date": "02/15/2026"}]}`

	path := filepath.Join(t.TempDir(), "data.json")
	be.NilErr(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := loadSnapshot(path)
	be.Nonzero(t, err)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := loadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	be.Nonzero(t, err)
}

func TestSnapshotNextEntryID(t *testing.T) {
	snap := &Snapshot{Entries: []ledger.Entry{{ID: 3}, {ID: 12}, {ID: 7}}}
	be.Equal(t, 13, snap.nextEntryID())

	empty := &Snapshot{}
	be.Equal(t, 1, empty.nextEntryID())
}

func TestSnapshotAddRemoveEntry(t *testing.T) {
	snap := &Snapshot{}

	snap.addEntry(ledger.Entry{ID: 1, Name: "Coffee", AmountMinor: -540, Category: "Food", Date: mustDate("2026-02-12")})
	snap.addEntry(ledger.Entry{ID: 2, Name: "Paycheck", AmountMinor: 85000, Category: "Income", Date: mustDate("2026-02-18")})
	be.Equal(t, 2, len(snap.Entries))

	snap.removeEntry(1)
	be.Equal(t, 1, len(snap.Entries))
	be.Equal(t, "Paycheck", snap.Entries[0].Name)

	// removing an unknown ID is a no-op
	snap.removeEntry(99)
	be.Equal(t, 1, len(snap.Entries))
}

func TestSnapshotCategories(t *testing.T) {
	snap := &Snapshot{
		Entries: []ledger.Entry{
			{ID: 1, Category: "Food"},
			{ID: 2, Category: "Income"},
			{ID: 3, Category: "Food"},
		},
		Limits: []ledger.CategoryLimit{
			{Category: "Rent", LimitMinor: 120000},
			{Category: "Food", LimitMinor: 50000},
		},
	}

	got := snap.categories()
	be.AllEqual(t, []string{"Rent", "Food", "Income"}, got)
}
