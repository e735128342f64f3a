package bootstrap

import (
	"context"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	trackingports "parcelhub/contexts/parcel-logistics/tracking-log/ports"
	"parcelhub/internal/platform/metrics"
)

const paymentLedgerUpdater = "payment-ledger"

// countingTrackingRepository counts stored tracking events by where they came
// from: a bearer-authenticated HTTP update or the payment consumer.
type countingTrackingRepository struct {
	trackingports.TrackingRepository
}

func (r countingTrackingRepository) AppendEvent(
	ctx context.Context,
	event entities.TrackingEvent,
	now time.Time,
) (entities.TrackingEvent, error) {
	stored, err := r.TrackingRepository.AppendEvent(ctx, event, now)
	if err != nil {
		return stored, err
	}
	source := "http"
	if stored.UpdatedBy == paymentLedgerUpdater {
		source = "payment_consumer"
	}
	metrics.TrackingEventsAppendedTotal.WithLabelValues(source).Inc()
	return stored, nil
}
