package analytics

import (
	"math"
	"strings"
	"testing"
)

func TestGrowth(t *testing.T) {
	cases := []struct {
		prev, cur, want float64
	}{
		{0, 0, 0},
		{0, 50, 100},
		{100, 150, 50},
		{100, 50, -50},
		{200, 200, 0},
	}
	for _, tc := range cases {
		if got := Growth(tc.prev, tc.cur); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Growth(%v, %v) = %v, want %v", tc.prev, tc.cur, got, tc.want)
		}
	}
}

func TestRecommendationsRules(t *testing.T) {
	// struggling cafe triggers every rule
	recs := Recommendations(2, 0, 1)
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d: %v", len(recs), recs)
	}

	// healthy cafe only gets the static peak-hours tip
	recs = Recommendations(12, 2, 3)
	if len(recs) != 1 {
		t.Fatalf("expected only the static tip, got %v", recs)
	}
	if !strings.Contains(recs[0], "peak hours") {
		t.Errorf("unexpected static tip: %q", recs[0])
	}
}

func TestRecommendationsBoundaries(t *testing.T) {
	// exactly 7 posts and 2 platforms clear their thresholds
	recs := Recommendations(7, 1, 2)
	if len(recs) != 1 {
		t.Errorf("boundary values should not trigger rules: %v", recs)
	}

	recs = Recommendations(6, 1, 2)
	if len(recs) != 2 {
		t.Errorf("6 posts should trigger the frequency rule: %v", recs)
	}
}

func TestValidPeriod(t *testing.T) {
	for _, p := range []string{PeriodDaily, PeriodWeekly, PeriodMonthly} {
		if !ValidPeriod(p) {
			t.Errorf("expected %s valid", p)
		}
	}
	if ValidPeriod("yearly") {
		t.Error("yearly is not a period")
	}
}
