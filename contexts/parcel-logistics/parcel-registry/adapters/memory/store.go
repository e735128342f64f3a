package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	application "parcelhub/contexts/parcel-logistics/parcel-registry/application"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	"parcelhub/contexts/parcel-logistics/parcel-registry/domain/services"
)

// Store is an in-memory adapter implementing parcel ports for local runtime
// and tests. Insertion order stands in for storage creation order.
type Store struct {
	mu       sync.RWMutex
	parcels  map[string]entities.Parcel
	order    []string
	created  int64
	sequence uint64
	logger   *slog.Logger
}

func NewStore(seed []entities.Parcel, logger *slog.Logger) *Store {
	store := &Store{
		parcels: make(map[string]entities.Parcel, len(seed)),
		order:   make([]string, 0, len(seed)),
		logger:  application.ResolveLogger(logger),
	}
	for _, parcel := range seed {
		store.created++
		parcel.Sequence = store.created
		store.parcels[parcel.ParcelID] = cloneParcel(parcel)
		store.order = append(store.order, parcel.ParcelID)
	}
	return store
}

func (s *Store) CreateParcel(_ context.Context, parcel entities.Parcel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.parcels[parcel.ParcelID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.created++
	parcel.Sequence = s.created
	s.parcels[parcel.ParcelID] = cloneParcel(parcel)
	s.order = append(s.order, parcel.ParcelID)
	return nil
}

func (s *Store) GetParcel(_ context.Context, parcelID string) (entities.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parcel, ok := s.parcels[parcelID]
	if !ok {
		return entities.Parcel{}, domainerrors.ErrParcelNotFound
	}
	return cloneParcel(parcel), nil
}

func (s *Store) ListParcelsByOwner(_ context.Context, ownerEmail string) ([]entities.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Parcel, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		parcel := s.parcels[s.order[i]]
		if ownerEmail != "" && parcel.OwnerEmail != ownerEmail {
			continue
		}
		items = append(items, cloneParcel(parcel))
	}
	return items, nil
}

func (s *Store) ListParcels(_ context.Context) ([]entities.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Parcel, 0, len(s.order))
	for _, parcelID := range s.order {
		items = append(items, cloneParcel(s.parcels[parcelID]))
	}
	return items, nil
}

func (s *Store) MarkParcelPaid(_ context.Context, parcelID string, paidAt time.Time) (entities.Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parcel, ok := s.parcels[parcelID]
	if !ok {
		return entities.Parcel{}, services.RejectNotFound()
	}
	if err := services.EvaluateMarkPaid(&parcel); err != nil {
		return entities.Parcel{}, err
	}

	paid := paidAt.UTC()
	parcel.PaymentStatus = entities.PaymentStatusPaid
	parcel.PaidAt = &paid
	s.parcels[parcelID] = parcel

	s.logger.Debug("parcel marked paid in memory store",
		"event", "memory_parcel_mark_paid",
		"module", "parcel-logistics/parcel-registry",
		"layer", "adapter",
		"parcel_id", parcelID,
	)
	return cloneParcel(parcel), nil
}

func (s *Store) DeleteParcel(_ context.Context, parcelID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.parcels[parcelID]; !ok {
		return 0, nil
	}
	delete(s.parcels, parcelID)
	filtered := s.order[:0]
	for _, id := range s.order {
		if id != parcelID {
			filtered = append(filtered, id)
		}
	}
	s.order = filtered
	return 1, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("parcel-%06d", n), nil
}

func (s *Store) NewTrackingCode(context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("PH%010d", n), nil
}

func cloneParcel(parcel entities.Parcel) entities.Parcel {
	out := parcel
	out.Payload = make(map[string]any, len(parcel.Payload))
	for key, value := range parcel.Payload {
		out.Payload[key] = value
	}
	if parcel.PaidAt != nil {
		paidAt := *parcel.PaidAt
		out.PaidAt = &paidAt
	}
	return out
}
