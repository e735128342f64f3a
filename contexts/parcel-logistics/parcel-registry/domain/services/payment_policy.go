package services

import (
	"fmt"

	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
)

// EvaluateMarkPaid enforces the one-way unpaid to paid transition. Both
// rejection causes also match ErrNotFoundOrAlreadyPaid.
func EvaluateMarkPaid(parcel *entities.Parcel) error {
	if parcel == nil {
		return RejectNotFound()
	}
	if parcel.IsPaid() {
		return fmt.Errorf("%w: %w", domainerrors.ErrNotFoundOrAlreadyPaid, domainerrors.ErrParcelAlreadyPaid)
	}
	return nil
}

func RejectNotFound() error {
	return fmt.Errorf("%w: %w", domainerrors.ErrNotFoundOrAlreadyPaid, domainerrors.ErrParcelNotFound)
}
