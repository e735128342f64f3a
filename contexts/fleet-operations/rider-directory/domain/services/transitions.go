package services

import (
	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
)

var allowedTransitions = map[entities.RiderStatus][]entities.RiderStatus{
	entities.RiderStatusPending:  {entities.RiderStatusActive, entities.RiderStatusRejected},
	entities.RiderStatusActive:   {entities.RiderStatusInactive},
	entities.RiderStatusInactive: {entities.RiderStatusActive},
}

// EvaluateTransition reports whether from -> to may be applied. A same-status
// request is allowed and reported as a no-op.
func EvaluateTransition(from entities.RiderStatus, to entities.RiderStatus) (noop bool, err error) {
	if from == to {
		return true, nil
	}
	for _, candidate := range allowedTransitions[from] {
		if candidate == to {
			return false, nil
		}
	}
	return false, domainerrors.ErrInvalidStatusTransition
}
