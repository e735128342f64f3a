package ports

import (
	"context"
	"time"

	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
)

type RiderRepository interface {
	CreateRider(ctx context.Context, rider entities.Rider) (entities.Rider, error)
	GetRider(ctx context.Context, riderID string) (entities.Rider, error)
	// ListRidersByStatus returns riders in storage order.
	ListRidersByStatus(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error)
	// UpdateRiderStatus applies to only when the stored status still equals
	// from, returning ErrStatusChanged otherwise.
	UpdateRiderStatus(
		ctx context.Context,
		riderID string,
		from entities.RiderStatus,
		to entities.RiderStatus,
		updatedAt time.Time,
	) (entities.Rider, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
