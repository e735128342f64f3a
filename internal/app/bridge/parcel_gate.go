// Package bridge adapts one context's use cases to another context's ports.
package bridge

import (
	"context"
	"errors"
	"fmt"

	ledgererrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	ledgerports "parcelhub/contexts/finance-core/payment-ledger/ports"
	"parcelhub/contexts/parcel-logistics/parcel-registry/application/commands"
	parcelerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
)

// ParcelPaymentGate lets the payment ledger settle parcels through the
// registry's conditional paid transition.
type ParcelPaymentGate struct {
	Parcels commands.MarkPaidUseCase
}

var _ ledgerports.ParcelGate = ParcelPaymentGate{}

func (g ParcelPaymentGate) MarkPaid(ctx context.Context, parcelID string) (ledgerports.SettledParcel, error) {
	parcel, err := g.Parcels.Execute(ctx, parcelID)
	if err != nil {
		switch {
		case errors.Is(err, parcelerrors.ErrParcelNotFound):
			return ledgerports.SettledParcel{}, fmt.Errorf("%w: %w", ledgererrors.ErrParcelNotFound, err)
		case errors.Is(err, parcelerrors.ErrParcelAlreadyPaid):
			return ledgerports.SettledParcel{}, fmt.Errorf("%w: %w", ledgererrors.ErrParcelAlreadyPaid, err)
		default:
			return ledgerports.SettledParcel{}, err
		}
	}
	return ledgerports.SettledParcel{
		ParcelID:     parcel.ParcelID,
		TrackingCode: parcel.TrackingCode,
	}, nil
}
