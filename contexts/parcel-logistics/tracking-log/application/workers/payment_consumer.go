package workers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "parcelhub/contexts/parcel-logistics/tracking-log/application"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	"parcelhub/contexts/parcel-logistics/tracking-log/ports"
	contractsv1 "parcelhub/contracts/gen/events/v1"
)

const (
	defaultConsumerGroup = "tracking-log-payment-cg"
	paymentUpdater       = "payment-ledger"
)

// PaymentRecordedConsumer appends a paid event to a parcel's history for each
// recorded payment. Redelivered envelopes are skipped via the dedup store.
type PaymentRecordedConsumer struct {
	Subscriber    ports.EventSubscriber
	Service       application.Service
	Dedup         ports.EventDedupStore
	Clock         ports.Clock
	ConsumerGroup string
	DedupTTL      time.Duration
	Logger        *slog.Logger
}

func (c PaymentRecordedConsumer) Start(ctx context.Context) error {
	group := c.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}
	return c.Subscriber.Subscribe(ctx, contractsv1.TopicPaymentRecorded, group, c.Handle)
}

// Handle processes one payment.recorded envelope.
func (c PaymentRecordedConsumer) Handle(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)

	var payload contractsv1.PaymentRecordedData
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("%w: %w", domainerrors.ErrInvalidEventPayload, err)
	}
	trackingCode := strings.TrimSpace(payload.TrackingCode)
	if trackingCode == "" {
		trackingCode = strings.TrimSpace(payload.ParcelID)
	}
	if strings.TrimSpace(event.EventID) == "" || trackingCode == "" {
		return domainerrors.ErrInvalidEventPayload
	}

	alreadyProcessed, err := c.Dedup.ReserveEvent(ctx, event.EventID, hashPayload(event.Data), c.now().Add(c.dedupTTL()))
	if err != nil {
		logger.Error("payment event dedupe failed",
			"event", "tracking_payment_dedupe_failed",
			"module", "parcel-logistics/tracking-log",
			"layer", "worker",
			"event_id", event.EventID,
			"error", err.Error(),
		)
		return err
	}
	if alreadyProcessed {
		logger.Debug("payment event already processed",
			"event", "tracking_payment_duplicate_skipped",
			"module", "parcel-logistics/tracking-log",
			"layer", "worker",
			"event_id", event.EventID,
		)
		return nil
	}

	_, err = c.Service.Append(ctx, application.AppendCommand{
		TrackingCode: trackingCode,
		ParcelID:     payload.ParcelID,
		Status:       entities.StatusPaid,
		Message:      fmt.Sprintf("payment %s %s %s received", payload.Amount, strings.ToUpper(payload.Currency), payload.Method),
		UpdatedBy:    paymentUpdater,
	})
	if err != nil {
		if releaseErr := c.Dedup.ReleaseEvent(ctx, event.EventID); releaseErr != nil {
			logger.Error("payment event release failed",
				"event", "tracking_payment_release_failed",
				"module", "parcel-logistics/tracking-log",
				"layer", "worker",
				"event_id", event.EventID,
				"error", releaseErr.Error(),
			)
		}
		return err
	}
	return nil
}

func (c PaymentRecordedConsumer) now() time.Time {
	if c.Clock == nil {
		return time.Now().UTC()
	}
	return c.Clock.Now().UTC()
}

func (c PaymentRecordedConsumer) dedupTTL() time.Duration {
	if c.DedupTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return c.DedupTTL
}

func hashPayload(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
