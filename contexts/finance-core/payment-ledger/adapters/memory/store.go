package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "parcelhub/contexts/finance-core/payment-ledger/application"
	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	"parcelhub/contexts/finance-core/payment-ledger/ports"
)

type unitKey struct{}

// Store is an in-memory ledger implementing the payment ports for local
// runtime and tests. It has no rollback: WithinTransaction only serializes
// units of work, which is enough for the conditional parcel write to decide
// the race.
type Store struct {
	txMu sync.Mutex

	mu            sync.RWMutex
	payments      map[string]entities.Payment
	order         []string
	byTransaction map[string]string
	outbox        map[string]ports.OutboxMessage
	outboxOrder   []string
	outboxSent    map[string]time.Time
	outboxFailed  map[string]time.Time
	sequence      uint64
	logger        *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		payments:      make(map[string]entities.Payment),
		byTransaction: make(map[string]string),
		outbox:        make(map[string]ports.OutboxMessage),
		outboxSent:    make(map[string]time.Time),
		outboxFailed:  make(map[string]time.Time),
		logger:        application.ResolveLogger(logger),
	}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(unitKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(context.WithValue(ctx, unitKey{}, struct{}{}))
}

func (s *Store) GetPaymentByTransactionID(_ context.Context, transactionID string) (entities.Payment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paymentID, ok := s.byTransaction[transactionID]
	if !ok {
		return entities.Payment{}, false, nil
	}
	payment, ok := s.payments[paymentID]
	if !ok {
		return entities.Payment{}, false, domainerrors.ErrRepositoryInvariantBroke
	}
	return payment, true, nil
}

func (s *Store) CreatePaymentWithOutbox(_ context.Context, payment entities.Payment, event ports.PaymentRecordedEvent) error {
	payload, err := json.Marshal(event.Envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[payment.PaymentID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	if _, exists := s.byTransaction[payment.TransactionID]; exists {
		return domainerrors.ErrTransactionConflict
	}
	if _, exists := s.outbox[event.EventID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}

	s.payments[payment.PaymentID] = payment
	s.order = append(s.order, payment.PaymentID)
	s.byTransaction[payment.TransactionID] = payment.PaymentID
	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PartitionKey,
		Payload:      payload,
		CreatedAt:    event.OccurredAt.UTC(),
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)

	s.logger.Info("payment and outbox persisted in memory store",
		"event", "memory_create_payment_with_outbox",
		"module", "finance-core/payment-ledger",
		"layer", "adapter",
		"payment_id", payment.PaymentID,
		"parcel_id", payment.ParcelID,
		"outbox_event_id", event.EventID,
	)
	return nil
}

func (s *Store) ListPaymentsByPayer(_ context.Context, payerEmail string) ([]entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Payment, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		payment := s.payments[s.order[i]]
		if payment.PayerEmail == payerEmail {
			items = append(items, payment)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PaidAt.After(items[j].PaidAt)
	})
	return items, nil
}

func (s *Store) CountPaymentsForParcel(_ context.Context, parcelID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, payment := range s.payments {
		if payment.ParcelID == parcelID {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	messages := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if _, failed := s.outboxFailed[id]; failed {
			continue
		}
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
		if len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

func (s *Store) MarkOutboxFailed(_ context.Context, outboxID string, failedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxFailed[outboxID] = failedAt.UTC()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("pay-%06d", n), nil
}

// OutboxEvents returns every outbox row in append order, sent or not.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if evt, ok := s.outbox[id]; ok {
			events = append(events, evt)
		}
	}
	return events
}
