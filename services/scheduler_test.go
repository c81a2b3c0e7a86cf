package services

import (
	"testing"
	"time"
)

func TestStartOfDayUTCIgnoresServerTimezone(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	// 2026-03-01 22:30 EST is already 2026-03-02 03:30 UTC.
	now := time.Date(2026, 3, 1, 22, 30, 0, 0, est)

	got := startOfDayUTC(now)
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("cutoff: got %v, want %v", got, want)
	}
}

func TestStartOfDayUTCMidnightStaysPut(t *testing.T) {
	now := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := startOfDayUTC(now); !got.Equal(now) {
		t.Fatalf("cutoff: got %v, want %v", got, now)
	}
}
