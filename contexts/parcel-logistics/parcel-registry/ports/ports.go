package ports

import (
	"context"
	"time"

	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
)

// ParcelRepository owns parcel persistence. Every read goes to storage; the
// module keeps no authoritative in-process copies.
type ParcelRepository interface {
	CreateParcel(ctx context.Context, parcel entities.Parcel) error
	GetParcel(ctx context.Context, parcelID string) (entities.Parcel, error)
	// ListParcelsByOwner returns newest-first; an empty owner lists all parcels.
	ListParcelsByOwner(ctx context.Context, ownerEmail string) ([]entities.Parcel, error)
	ListParcels(ctx context.Context) ([]entities.Parcel, error)
	// MarkParcelPaid must be a single conditional write: it succeeds only if
	// the parcel exists and is not already paid.
	MarkParcelPaid(ctx context.Context, parcelID string, paidAt time.Time) (entities.Parcel, error)
	DeleteParcel(ctx context.Context, parcelID string) (int64, error)
}

// Clock allows deterministic timestamps in tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts parcel identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TrackingCodeGenerator issues human-readable tracking codes.
type TrackingCodeGenerator interface {
	NewTrackingCode(ctx context.Context) (string, error)
}
