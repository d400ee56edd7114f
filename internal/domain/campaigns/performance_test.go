package campaigns

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputePerformance(t *testing.T) {
	m := Metrics{
		Impressions: 1000,
		Clicks:      20,
		Conversions: 2,
		Spend:       40,
	}
	p := ComputePerformance(m)

	if !almostEqual(p.CTR, 2.0) {
		t.Errorf("CTR = %v, want 2.0", p.CTR)
	}
	if !almostEqual(p.ConversionRate, 10.0) {
		t.Errorf("ConversionRate = %v, want 10.0", p.ConversionRate)
	}
	if !almostEqual(p.CPC, 2.0) {
		t.Errorf("CPC = %v, want 2.0", p.CPC)
	}
	// 2 conversions * 15.0 / 40 spend
	if !almostEqual(p.ROAS, 0.75) {
		t.Errorf("ROAS = %v, want 0.75", p.ROAS)
	}
}

func TestComputePerformanceZeroDenominators(t *testing.T) {
	p := ComputePerformance(Metrics{})
	if p.CTR != 0 || p.ConversionRate != 0 || p.CPC != 0 || p.ROAS != 0 {
		t.Errorf("expected all ratios zero, got %+v", p)
	}

	// clicks without impressions must not panic and CTR stays 0
	p = ComputePerformance(Metrics{Clicks: 5, Conversions: 1, Spend: 10})
	if p.CTR != 0 {
		t.Errorf("CTR with no impressions = %v, want 0", p.CTR)
	}
	if !almostEqual(p.ConversionRate, 20.0) {
		t.Errorf("ConversionRate = %v, want 20.0", p.ConversionRate)
	}
}

func TestComputeROI(t *testing.T) {
	roi := ComputeROI(Metrics{Conversions: 10, Spend: 50})
	if !almostEqual(roi.Revenue, 150) {
		t.Errorf("Revenue = %v, want 150", roi.Revenue)
	}
	if !almostEqual(roi.Profit, 100) {
		t.Errorf("Profit = %v, want 100", roi.Profit)
	}
	if !almostEqual(roi.ROI, 200) {
		t.Errorf("ROI = %v, want 200", roi.ROI)
	}

	if got := ComputeROI(Metrics{Conversions: 3}); got != (ROI{}) {
		t.Errorf("ROI with zero spend = %+v, want zero value", got)
	}
}

func TestCampaignTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusDraft, StatusActive},
		{StatusActive, StatusPaused},
		{StatusPaused, StatusActive},
		{StatusActive, StatusCompleted},
		{StatusPaused, StatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusDraft, StatusCompleted},
		{StatusDraft, StatusPaused},
		{StatusCompleted, StatusActive},
		{StatusCancelled, StatusActive},
		{StatusActive, StatusDraft},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}
