package queries

import (
	"context"
	"log/slog"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

type ListParcelsQuery struct {
	// OwnerEmail filters to one owner; empty lists every parcel.
	OwnerEmail string
}

type ListParcelsUseCase struct {
	Parcels ports.ParcelRepository
	Logger  *slog.Logger
}

// Execute returns parcels newest-first.
func (u ListParcelsUseCase) Execute(ctx context.Context, query ListParcelsQuery) ([]entities.Parcel, error) {
	owner := entities.NormalizeOwner(query.OwnerEmail)
	items, err := u.Parcels.ListParcelsByOwner(ctx, owner)
	if err != nil {
		application.ResolveLogger(u.Logger).Error("list parcels failed",
			"event", "parcel_list_failed",
			"module", "parcel-logistics/parcel-registry",
			"layer", "application",
			"owner_email", owner,
			"error", err.Error(),
		)
		return nil, err
	}
	return items, nil
}

type ListAllParcelsUseCase struct {
	Parcels ports.ParcelRepository
}

// Execute returns every parcel in storage order.
func (u ListAllParcelsUseCase) Execute(ctx context.Context) ([]entities.Parcel, error) {
	return u.Parcels.ListParcels(ctx)
}
