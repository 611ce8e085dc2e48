package service

import "testing"

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{50, 5000},
		{12.5, 1250},
		{0.1, 10},
		{0, 0},
		// Sub-cent precision truncates rather than rounds.
		{19.999, 1999},
	}

	for _, tc := range cases {
		if got := MinorUnits(tc.price); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
