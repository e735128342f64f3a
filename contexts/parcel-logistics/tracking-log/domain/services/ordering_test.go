package services

import (
	"testing"
	"time"
)

func TestNextRecordedAtUsesClockWhenAhead(t *testing.T) {
	prev := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	now := prev.Add(time.Second)
	if got := NextRecordedAt(&prev, now); !got.Equal(now) {
		t.Fatalf("expected %s, got %s", now, got)
	}
}

func TestNextRecordedAtClampsBackwardsClock(t *testing.T) {
	prev := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, now := range []time.Time{prev, prev.Add(-time.Minute)} {
		got := NextRecordedAt(&prev, now)
		if !got.After(prev) {
			t.Fatalf("expected timestamp after %s, got %s", prev, got)
		}
		if got.Sub(prev) != MinStep {
			t.Fatalf("expected one step after previous, got %s", got.Sub(prev))
		}
	}
}

func TestNextRecordedAtFirstEvent(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 1500, time.UTC)
	got := NextRecordedAt(nil, now)
	if got.Nanosecond() != 1000 {
		t.Fatalf("expected microsecond truncation, got %d ns", got.Nanosecond())
	}
}
