package services

import (
	"errors"
	"testing"

	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
)

func TestEvaluateTransition(t *testing.T) {
	cases := []struct {
		from    entities.RiderStatus
		to      entities.RiderStatus
		allowed bool
		noop    bool
	}{
		{from: entities.RiderStatusPending, to: entities.RiderStatusActive, allowed: true},
		{from: entities.RiderStatusPending, to: entities.RiderStatusRejected, allowed: true},
		{from: entities.RiderStatusActive, to: entities.RiderStatusInactive, allowed: true},
		{from: entities.RiderStatusInactive, to: entities.RiderStatusActive, allowed: true},
		{from: entities.RiderStatusActive, to: entities.RiderStatusActive, allowed: true, noop: true},
		{from: entities.RiderStatusRejected, to: entities.RiderStatusActive},
		{from: entities.RiderStatusActive, to: entities.RiderStatusPending},
		{from: entities.RiderStatusPending, to: entities.RiderStatusInactive},
	}
	for _, tc := range cases {
		noop, err := EvaluateTransition(tc.from, tc.to)
		if tc.allowed && err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.allowed && !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
			t.Fatalf("%s -> %s: expected invalid transition, got %v", tc.from, tc.to, err)
		}
		if noop != tc.noop {
			t.Fatalf("%s -> %s: expected noop=%v", tc.from, tc.to, tc.noop)
		}
	}
}
