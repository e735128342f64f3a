package queries

import (
	"context"
	"log/slog"
	"strings"

	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

type GetParcelUseCase struct {
	Parcels ports.ParcelRepository
	Logger  *slog.Logger
}

func (u GetParcelUseCase) Execute(ctx context.Context, parcelID string) (entities.Parcel, error) {
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return entities.Parcel{}, domainerrors.ErrParcelNotFound
	}
	return u.Parcels.GetParcel(ctx, parcelID)
}
