package ports

import (
	"context"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	contractsv1 "parcelhub/contracts/gen/events/v1"
)

// TrackingRepository persists events. AppendEvent must serialize appends per
// tracking code and assign RecordedAt with services.NextRecordedAt against the
// code's latest event, plus a storage-wide increasing Sequence.
type TrackingRepository interface {
	AppendEvent(ctx context.Context, event entities.TrackingEvent, now time.Time) (entities.TrackingEvent, error)
	// Lists return oldest first, ordered by RecordedAt then Sequence.
	ListByTrackingCode(ctx context.Context, trackingCode string) ([]entities.TrackingEvent, error)
	ListByParcel(ctx context.Context, parcelID string) ([]entities.TrackingEvent, error)
}

// EventDedupStore records consumed integration events. ReserveEvent reports
// true when eventID was already processed with the same payload hash.
// ReleaseEvent drops a reservation whose processing failed.
type EventDedupStore interface {
	ReserveEvent(ctx context.Context, eventID string, payloadHash string, expiresAt time.Time) (bool, error)
	ReleaseEvent(ctx context.Context, eventID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type EventSubscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, EventEnvelope) error,
	) error
}
