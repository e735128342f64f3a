package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/services"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

type MarkPaidUseCase struct {
	Parcels ports.ParcelRepository
	Clock   ports.Clock
	Logger  *slog.Logger
}

// Execute transitions the parcel to paid through the repository's conditional
// write. Concurrent callers for one parcel see exactly one success.
func (u MarkPaidUseCase) Execute(ctx context.Context, parcelID string) (entities.Parcel, error) {
	logger := application.ResolveLogger(u.Logger)
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return entities.Parcel{}, services.RejectNotFound()
	}

	parcel, err := u.Parcels.MarkParcelPaid(ctx, parcelID, u.now())
	if err != nil {
		logger.Warn("mark parcel paid rejected",
			"event", "parcel_mark_paid_rejected",
			"module", "parcel-logistics/parcel-registry",
			"layer", "application",
			"parcel_id", parcelID,
			"error", err.Error(),
		)
		return entities.Parcel{}, err
	}

	logger.Info("parcel marked paid",
		"event", "parcel_marked_paid",
		"module", "parcel-logistics/parcel-registry",
		"layer", "application",
		"parcel_id", parcel.ParcelID,
	)
	return parcel, nil
}

func (u MarkPaidUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
