package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	"parcelhub/contexts/parcel-logistics/tracking-log/ports"
)

type AppendCommand struct {
	TrackingCode string
	ParcelID     string
	Status       string
	Message      string
	UpdatedBy    string
}

type Service struct {
	Repo        ports.TrackingRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Append stores one event. The repository stamps it from the service clock,
// clamped so a tracking code's history never moves backwards in time.
func (s Service) Append(ctx context.Context, cmd AppendCommand) (entities.TrackingEvent, error) {
	logger := ResolveLogger(s.Logger)
	eventID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.TrackingEvent{}, err
	}
	event, err := entities.NewTrackingEvent(
		eventID,
		cmd.TrackingCode,
		cmd.ParcelID,
		cmd.Status,
		cmd.Message,
		cmd.UpdatedBy,
	)
	if err != nil {
		return entities.TrackingEvent{}, err
	}

	stored, err := s.Repo.AppendEvent(ctx, event, s.now())
	if err != nil {
		logger.Error("tracking append failed",
			"event", "tracking_append_failed",
			"module", "parcel-logistics/tracking-log",
			"layer", "application",
			"tracking_code", event.TrackingCode,
			"error", err.Error(),
		)
		return entities.TrackingEvent{}, err
	}

	logger.Info("tracking event appended",
		"event", "tracking_event_appended",
		"module", "parcel-logistics/tracking-log",
		"layer", "application",
		"event_id", stored.EventID,
		"tracking_code", stored.TrackingCode,
		"parcel_id", stored.ParcelID,
		"status", stored.Status,
		"sequence", stored.Sequence,
	)
	return stored, nil
}

func (s Service) ListByTrackingCode(ctx context.Context, trackingCode string) ([]entities.TrackingEvent, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return nil, domainerrors.ErrInvalidQuery
	}
	return s.Repo.ListByTrackingCode(ctx, trackingCode)
}

func (s Service) ListByParcel(ctx context.Context, parcelID string) ([]entities.TrackingEvent, error) {
	parcelID = strings.TrimSpace(parcelID)
	if parcelID == "" {
		return nil, domainerrors.ErrInvalidQuery
	}
	return s.Repo.ListByParcel(ctx, parcelID)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
