package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
)

type Store struct {
	mu       sync.RWMutex
	riders   map[string]entities.Rider
	order    []string
	created  int64
	sequence uint64
}

func NewStore() *Store {
	return &Store{
		riders: make(map[string]entities.Rider),
	}
}

func (s *Store) CreateRider(_ context.Context, rider entities.Rider) (entities.Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.riders[rider.RiderID]; exists {
		return entities.Rider{}, domainerrors.ErrRepositoryInvariantBroke
	}
	s.created++
	rider.Sequence = s.created
	rider.Profile = cloneProfile(rider.Profile)
	s.riders[rider.RiderID] = rider
	s.order = append(s.order, rider.RiderID)
	return cloneRider(rider), nil
}

func (s *Store) GetRider(_ context.Context, riderID string) (entities.Rider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rider, ok := s.riders[riderID]
	if !ok {
		return entities.Rider{}, domainerrors.ErrRiderNotFound
	}
	return cloneRider(rider), nil
}

func (s *Store) ListRidersByStatus(_ context.Context, status entities.RiderStatus) ([]entities.Rider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Rider, 0)
	for _, id := range s.order {
		rider := s.riders[id]
		if rider.Status == status {
			items = append(items, cloneRider(rider))
		}
	}
	return items, nil
}

func (s *Store) UpdateRiderStatus(
	_ context.Context,
	riderID string,
	from entities.RiderStatus,
	to entities.RiderStatus,
	updatedAt time.Time,
) (entities.Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rider, ok := s.riders[riderID]
	if !ok {
		return entities.Rider{}, domainerrors.ErrRiderNotFound
	}
	if rider.Status != from {
		return entities.Rider{}, domainerrors.ErrStatusChanged
	}
	rider.Status = to
	rider.UpdatedAt = updatedAt.UTC()
	s.riders[riderID] = rider
	return cloneRider(rider), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("rider-%06d", n), nil
}

func cloneRider(rider entities.Rider) entities.Rider {
	rider.Profile = cloneProfile(rider.Profile)
	return rider
}

func cloneProfile(profile map[string]any) map[string]any {
	out := make(map[string]any, len(profile))
	for key, value := range profile {
		out[key] = value
	}
	return out
}
