package commands

import (
	"context"
	"log/slog"
	"strings"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

type DeleteParcelResult struct {
	DeletedCount int64
}

type DeleteParcelUseCase struct {
	Parcels ports.ParcelRepository
	Logger  *slog.Logger
}

// Execute hard-deletes by id. A missing parcel is reported as zero deleted
// rows, not as an error.
func (u DeleteParcelUseCase) Execute(ctx context.Context, parcelID string) (DeleteParcelResult, error) {
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return DeleteParcelResult{}, domainerrors.ErrInvalidParcelID
	}
	deleted, err := u.Parcels.DeleteParcel(ctx, parcelID)
	if err != nil {
		return DeleteParcelResult{}, err
	}

	application.ResolveLogger(u.Logger).Info("parcel delete processed",
		"event", "parcel_deleted",
		"module", "parcel-logistics/parcel-registry",
		"layer", "application",
		"parcel_id", parcelID,
		"deleted_count", deleted,
	)
	return DeleteParcelResult{DeletedCount: deleted}, nil
}
