package workers

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"parcelhub/contexts/parcel-logistics/tracking-log/adapters/memory"
	"parcelhub/contexts/parcel-logistics/tracking-log/application"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	"parcelhub/contexts/parcel-logistics/tracking-log/ports"
	contractsv1 "parcelhub/contracts/gen/events/v1"
	"parcelhub/internal/platform/messaging"
)

func newConsumer(store *memory.Store) PaymentRecordedConsumer {
	return PaymentRecordedConsumer{
		Service: application.Service{Repo: store, Clock: store, IDGenerator: store},
		Dedup:   store,
		Clock:   store,
	}
}

func paymentEnvelope(t *testing.T, eventID string, data contractsv1.PaymentRecordedData) ports.EventEnvelope {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return ports.EventEnvelope{
		EventID:   eventID,
		EventType: contractsv1.TopicPaymentRecorded,
		Data:      raw,
	}
}

func TestPaymentConsumerAppendsPaidEventOnce(t *testing.T) {
	store := memory.NewStore(nil)
	consumer := newConsumer(store)
	event := paymentEnvelope(t, "evt-1", contractsv1.PaymentRecordedData{
		ParcelID:     "P1",
		TrackingCode: "TRK1",
		Amount:       "500",
		Currency:     "usd",
		Method:       "card",
	})

	for i := 0; i < 2; i++ {
		if err := consumer.Handle(context.Background(), event); err != nil {
			t.Fatalf("handle %d failed: %v", i, err)
		}
	}

	items, err := store.ListByTrackingCode(context.Background(), "TRK1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one paid event after redelivery, got %d", len(items))
	}
	if items[0].Status != "paid" || items[0].ParcelID != "P1" || items[0].UpdatedBy != "payment-ledger" {
		t.Fatalf("unexpected event %+v", items[0])
	}
}

func TestPaymentConsumerRejectsReusedEventID(t *testing.T) {
	store := memory.NewStore(nil)
	consumer := newConsumer(store)

	first := paymentEnvelope(t, "evt-1", contractsv1.PaymentRecordedData{ParcelID: "P1", TrackingCode: "TRK1"})
	second := paymentEnvelope(t, "evt-1", contractsv1.PaymentRecordedData{ParcelID: "P2", TrackingCode: "TRK2"})
	if err := consumer.Handle(context.Background(), first); err != nil {
		t.Fatalf("handle failed: %v", err)
	}
	if err := consumer.Handle(context.Background(), second); !errors.Is(err, domainerrors.ErrDuplicateEventConflict) {
		t.Fatalf("expected duplicate conflict, got %v", err)
	}
}

func TestPaymentConsumerRejectsMalformedPayload(t *testing.T) {
	consumer := newConsumer(memory.NewStore(nil))
	err := consumer.Handle(context.Background(), ports.EventEnvelope{EventID: "evt-1", Data: []byte("{")})
	if !errors.Is(err, domainerrors.ErrInvalidEventPayload) {
		t.Fatalf("expected invalid payload, got %v", err)
	}
}

type flakyRepository struct {
	ports.TrackingRepository
	mu       sync.Mutex
	failures int
}

func (r *flakyRepository) AppendEvent(ctx context.Context, event entities.TrackingEvent, now time.Time) (entities.TrackingEvent, error) {
	r.mu.Lock()
	fail := r.failures > 0
	if fail {
		r.failures--
	}
	r.mu.Unlock()
	if fail {
		return entities.TrackingEvent{}, errors.New("storage unavailable")
	}
	return r.TrackingRepository.AppendEvent(ctx, event, now)
}

func TestPaymentConsumerRetriesAfterFailedAppend(t *testing.T) {
	store := memory.NewStore(nil)
	consumer := newConsumer(store)
	consumer.Service.Repo = &flakyRepository{TrackingRepository: store, failures: 1}
	event := paymentEnvelope(t, "evt-9", contractsv1.PaymentRecordedData{ParcelID: "P9", TrackingCode: "TRK9"})

	if err := consumer.Handle(context.Background(), event); err == nil {
		t.Fatalf("expected first delivery to fail")
	}
	if err := consumer.Handle(context.Background(), event); err != nil {
		t.Fatalf("expected redelivery to succeed, got %v", err)
	}

	items, err := store.ListByTrackingCode(context.Background(), "TRK9")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one paid event, got %d", len(items))
	}
}

func TestPaymentConsumerRecoversFromFailedAppendOverBus(t *testing.T) {
	bus, err := messaging.NewBus(nil, nil)
	if err != nil {
		t.Fatalf("bus setup failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewStore(nil)
	consumer := newConsumer(store)
	consumer.Subscriber = bus
	consumer.Service.Repo = &flakyRepository{TrackingRepository: store, failures: 1}
	if err := consumer.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	event := paymentEnvelope(t, "evt-bus", contractsv1.PaymentRecordedData{ParcelID: "P7", TrackingCode: "TRK7"})
	if err := bus.Publish(ctx, contractsv1.TopicPaymentRecorded, event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for {
		items, err := store.ListByTrackingCode(context.Background(), "TRK7")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(items) == 1 {
			if items[0].Status != "paid" {
				t.Fatalf("expected paid event, got %+v", items[0])
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected paid event after redelivery, got %d events", len(items))
		}
		time.Sleep(20 * time.Millisecond)
	}
}
