package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "parcelhub/contexts/finance-core/payment-ledger/application"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
	contractsv1 "parcelhub/contracts/gen/events/v1"
)

// OutboxRelay drains pending ledger outbox rows to the event bus. A row is
// marked sent only after a successful publish, so delivery is at-least-once.
// A row whose payload cannot be decoded is marked failed and skipped.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

// RunOnce relays one batch and returns how many rows were sent.
func (r OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("outbox list pending failed",
			"event", "payment_ledger_outbox_list_failed",
			"module", "finance-core/payment-ledger",
			"layer", "worker",
			"error", err.Error(),
		)
		return 0, err
	}

	sent := 0
	for _, message := range pending {
		var envelope ports.EventEnvelope
		if err := json.Unmarshal(message.Payload, &envelope); err != nil {
			logger.Error("outbox payload decode failed",
				"event", "payment_ledger_outbox_decode_failed",
				"module", "finance-core/payment-ledger",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			if markErr := r.Outbox.MarkOutboxFailed(ctx, message.OutboxID, r.now()); markErr != nil {
				logger.Error("outbox park failed",
					"event", "payment_ledger_outbox_park_failed",
					"module", "finance-core/payment-ledger",
					"layer", "worker",
					"outbox_id", message.OutboxID,
					"error", markErr.Error(),
				)
				return sent, markErr
			}
			continue
		}

		topic := message.EventType
		if topic == "" {
			topic = contractsv1.TopicPaymentRecorded
		}
		if err := r.Publisher.Publish(ctx, topic, envelope); err != nil {
			logger.Warn("outbox publish failed",
				"event", "payment_ledger_outbox_publish_failed",
				"module", "finance-core/payment-ledger",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"event_id", envelope.EventID,
				"error", err.Error(),
			)
			return sent, err
		}
		if err := r.Outbox.MarkOutboxSent(ctx, message.OutboxID, r.now()); err != nil {
			logger.Error("outbox mark sent failed",
				"event", "payment_ledger_outbox_mark_sent_failed",
				"module", "finance-core/payment-ledger",
				"layer", "worker",
				"outbox_id", message.OutboxID,
				"error", err.Error(),
			)
			return sent, err
		}
		sent++
	}

	if sent > 0 {
		logger.Info("outbox relay cycle completed",
			"event", "payment_ledger_outbox_relay_completed",
			"module", "finance-core/payment-ledger",
			"layer", "worker",
			"sent_count", sent,
		)
	}
	return sent, nil
}

func (r OutboxRelay) now() time.Time {
	if r.Clock == nil {
		return time.Now().UTC()
	}
	return r.Clock.Now().UTC()
}
