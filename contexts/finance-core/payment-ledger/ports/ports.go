package ports

import (
	"context"
	"time"

	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	contractsv1 "parcelhub/contracts/gen/events/v1"
)

// SettledParcel is what the ledger learns about a parcel it just marked paid.
type SettledParcel struct {
	ParcelID     string
	TrackingCode string
}

// ParcelGate is the ledger's view of the parcel registry. MarkPaid must be a
// conditional write and must fail with an error matching ErrParcelNotFound or
// ErrParcelAlreadyPaid when the transition is not applied.
type ParcelGate interface {
	MarkPaid(ctx context.Context, parcelID string) (SettledParcel, error)
}

// TxRunner groups the parcel transition and the ledger append into one unit
// of work. Implementations propagate the unit through ctx.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentRecordedEvent is the outbound integration payload persisted to outbox.
type PaymentRecordedEvent struct {
	EventID      string
	EventType    string
	PartitionKey string
	OccurredAt   time.Time
	Envelope     EventEnvelope
}

// PaymentRepository owns ledger persistence. Entries are never updated.
type PaymentRepository interface {
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (entities.Payment, bool, error)
	// CreatePaymentWithOutbox must atomically persist the entry and outbox event.
	CreatePaymentWithOutbox(ctx context.Context, payment entities.Payment, event PaymentRecordedEvent) error
	// ListPaymentsByPayer returns newest first.
	ListPaymentsByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error)
	CountPaymentsForParcel(ctx context.Context, parcelID string) (int, error)
}

// PaymentProcessor is the external card processor. One call, no retries.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (entities.PaymentIntent, error)
}

// Clock allows deterministic testing of timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts payment/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row ready to relay from the ledger outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
	// MarkOutboxFailed parks a row that can never be relayed so it stops
	// being listed as pending.
	MarkOutboxFailed(ctx context.Context, outboxID string, failedAt time.Time) error
}

// EventEnvelope reuses the canonical cross-context envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
