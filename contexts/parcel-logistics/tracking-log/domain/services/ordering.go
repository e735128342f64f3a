package services

import "time"

// MinStep is the gap enforced between consecutive events of one tracking code
// when the clock does not advance. Postgres keeps microsecond precision.
const MinStep = time.Microsecond

// NextRecordedAt returns now, or just after previous when the clock reads at
// or before it. The result is truncated to MinStep.
func NextRecordedAt(previous *time.Time, now time.Time) time.Time {
	next := now.UTC().Truncate(MinStep)
	if previous == nil {
		return next
	}
	floor := previous.UTC().Add(MinStep)
	if next.Before(floor) {
		return floor
	}
	return next
}
