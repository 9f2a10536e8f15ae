package ledger

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestPercentRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		whole int64
		want  int64
	}{
		{name: "12.5 rounds up", part: 125, whole: 1000, want: 13},
		{name: "11.5 rounds up", part: 115, whole: 1000, want: 12},
		{name: "12.4 rounds down", part: 124, whole: 1000, want: 12},
		{name: "12.6 rounds up", part: 126, whole: 1000, want: 13},
		{name: "-12.5 rounds away from zero", part: -125, whole: 1000, want: -13},
		{name: "-11.5 rounds away from zero", part: -115, whole: 1000, want: -12},
		{name: "-12.4 rounds toward zero", part: -124, whole: 1000, want: -12},
		{name: "zero part", part: 0, whole: 1000, want: 0},
		{name: "exact hundred", part: 1000, whole: 1000, want: 100},
		{name: "over hundred", part: 1205, whole: 1000, want: 121},
		{name: "0.5 rounds to one", part: 5, whole: 1000, want: 1},
		{name: "-0.5 rounds to minus one", part: -5, whole: 1000, want: -1},
		{name: "large amounts", part: 1_000_000_000_000, whole: 4_000_000_000_000, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, Percent(tt.part, tt.whole))
		})
	}
}
