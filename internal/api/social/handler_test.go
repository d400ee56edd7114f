package social

import (
	"testing"
	"time"
)

func TestExpandBulkScheduleCount(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := ExpandBulkSchedule(start, 3, []string{"instagram"}, []string{"09:00"})
	if len(slots) != 3 {
		t.Fatalf("3 days x 1 platform x 1 slot = %d, want 3", len(slots))
	}

	slots = ExpandBulkSchedule(start, 2, []string{"instagram", "facebook"}, []string{"09:00", "17:30"})
	if len(slots) != 8 {
		t.Fatalf("2 days x 2 platforms x 2 slots = %d, want 8", len(slots))
	}
}

func TestExpandBulkScheduleTimes(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := ExpandBulkSchedule(start, 2, []string{"twitter"}, []string{"17:30"})
	if slots[0].At.Hour() != 17 || slots[0].At.Minute() != 30 {
		t.Errorf("first slot time = %v", slots[0].At)
	}
	if slots[1].At.Day() != 2 {
		t.Errorf("second slot day = %d, want 2", slots[1].At.Day())
	}
	if slots[0].Platform != "twitter" {
		t.Errorf("platform = %s", slots[0].Platform)
	}
}

func TestExpandBulkScheduleDefaultSlot(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	slots := ExpandBulkSchedule(start, 1, []string{"facebook"}, nil)
	if len(slots) != 1 {
		t.Fatalf("expected one default slot, got %d", len(slots))
	}
	if slots[0].At.Hour() != 9 {
		t.Errorf("default slot hour = %d, want 9", slots[0].At.Hour())
	}
}

func TestExpandBulkScheduleBadClockString(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 15, 0, 0, time.UTC)

	slots := ExpandBulkSchedule(start, 1, []string{"facebook"}, []string{"not-a-time"})
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
	// unparseable slots fall back to the start-of-day timestamp
	if !slots[0].At.Equal(start) {
		t.Errorf("fallback time = %v, want %v", slots[0].At, start)
	}
}
