package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	application "parcelhub/contexts/parcel-logistics/tracking-log/application"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/entities"
	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	"parcelhub/contexts/parcel-logistics/tracking-log/domain/services"
)

// Store is an in-memory tracking log. One mutex serializes appends, which
// covers the per-code ordering requirement.
type Store struct {
	mu         sync.RWMutex
	events     []entities.TrackingEvent
	latest     map[string]time.Time
	eventDedup map[string]string
	sequence   int64
	ids        uint64
	logger     *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		latest:     make(map[string]time.Time),
		eventDedup: make(map[string]string),
		logger:     application.ResolveLogger(logger),
	}
}

func (s *Store) AppendEvent(_ context.Context, event entities.TrackingEvent, now time.Time) (entities.TrackingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var previous *time.Time
	if last, ok := s.latest[event.TrackingCode]; ok {
		previous = &last
	}
	event.RecordedAt = services.NextRecordedAt(previous, now)
	s.sequence++
	event.Sequence = s.sequence

	s.events = append(s.events, event)
	s.latest[event.TrackingCode] = event.RecordedAt

	s.logger.Debug("tracking event stored in memory",
		"event", "memory_tracking_append",
		"module", "parcel-logistics/tracking-log",
		"layer", "adapter",
		"event_id", event.EventID,
		"tracking_code", event.TrackingCode,
	)
	return event, nil
}

func (s *Store) ListByTrackingCode(_ context.Context, trackingCode string) ([]entities.TrackingEvent, error) {
	return s.filter(func(event entities.TrackingEvent) bool {
		return event.TrackingCode == trackingCode
	}), nil
}

func (s *Store) ListByParcel(_ context.Context, parcelID string) ([]entities.TrackingEvent, error) {
	return s.filter(func(event entities.TrackingEvent) bool {
		return event.ParcelID == parcelID
	}), nil
}

func (s *Store) filter(match func(entities.TrackingEvent) bool) []entities.TrackingEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.TrackingEvent, 0)
	for _, event := range s.events {
		if match(event) {
			items = append(items, event)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].RecordedAt.Equal(items[j].RecordedAt) {
			return items[i].Sequence < items[j].Sequence
		}
		return items[i].RecordedAt.Before(items[j].RecordedAt)
	})
	return items
}

func (s *Store) ReserveEvent(_ context.Context, eventID string, payloadHash string, _ time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.eventDedup[eventID]; ok {
		if existing != payloadHash {
			return false, domainerrors.ErrDuplicateEventConflict
		}
		return true, nil
	}
	s.eventDedup[eventID] = payloadHash
	return false, nil
}

func (s *Store) ReleaseEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.eventDedup, eventID)
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(context.Context) (string, error) {
	n := atomic.AddUint64(&s.ids, 1)
	return fmt.Sprintf("trk-%06d", n), nil
}
