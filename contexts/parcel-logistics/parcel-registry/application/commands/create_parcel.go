package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	"parcelhub/contexts/parcel-logistics/parcel-registry/ports"
)

type CreateParcelCommand struct {
	OwnerEmail   string
	TrackingCode string
	Payload      map[string]any
}

type CreateParcelUseCase struct {
	Parcels       ports.ParcelRepository
	Clock         ports.Clock
	IDGenerator   ports.IDGenerator
	TrackingCodes ports.TrackingCodeGenerator
	Logger        *slog.Logger
}

func (u CreateParcelUseCase) Execute(ctx context.Context, cmd CreateParcelCommand) (entities.Parcel, error) {
	logger := application.ResolveLogger(u.Logger)

	parcelID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Parcel{}, err
	}
	trackingCode := strings.TrimSpace(cmd.TrackingCode)
	if trackingCode == "" {
		trackingCode, err = u.TrackingCodes.NewTrackingCode(ctx)
		if err != nil {
			return entities.Parcel{}, err
		}
	}

	parcel, err := entities.NewParcel(parcelID, trackingCode, cmd.OwnerEmail, cmd.Payload, u.now())
	if err != nil {
		return entities.Parcel{}, err
	}
	if err := u.Parcels.CreateParcel(ctx, parcel); err != nil {
		logger.Error("create parcel failed",
			"event", "parcel_create_failed",
			"module", "parcel-logistics/parcel-registry",
			"layer", "application",
			"owner_email", parcel.OwnerEmail,
			"error", err.Error(),
		)
		return entities.Parcel{}, err
	}

	logger.Info("parcel created",
		"event", "parcel_created",
		"module", "parcel-logistics/parcel-registry",
		"layer", "application",
		"parcel_id", parcel.ParcelID,
		"tracking_code", parcel.TrackingCode,
		"owner_email", parcel.OwnerEmail,
	)
	return parcel, nil
}

func (u CreateParcelUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
