package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parcelhub/contexts/fleet-operations/rider-directory/domain/entities"
	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
	"parcelhub/contexts/fleet-operations/rider-directory/domain/services"
	"parcelhub/contexts/fleet-operations/rider-directory/ports"
)

type Service struct {
	Repo        ports.RiderRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) SubmitApplication(ctx context.Context, email string, profile map[string]any) (entities.Rider, error) {
	riderID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Rider{}, err
	}
	rider, err := entities.NewRider(riderID, email, profile, s.now())
	if err != nil {
		return entities.Rider{}, err
	}
	stored, err := s.Repo.CreateRider(ctx, rider)
	if err != nil {
		return entities.Rider{}, err
	}

	ResolveLogger(s.Logger).Info("rider application submitted",
		"event", "rider_application_submitted",
		"module", "fleet-operations/rider-directory",
		"layer", "application",
		"rider_id", stored.RiderID,
		"email", stored.Email,
	)
	return stored, nil
}

// ListByStatus lists riders with the given status. Pending applications come
// back newest first; every other status keeps storage order.
func (s Service) ListByStatus(ctx context.Context, rawStatus string) ([]entities.Rider, error) {
	if strings.TrimSpace(rawStatus) == "" {
		rawStatus = string(entities.RiderStatusPending)
	}
	status, err := entities.ParseRiderStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListRidersByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if status == entities.RiderStatusPending {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items, nil
}

func (s Service) UpdateStatus(ctx context.Context, riderID string, rawStatus string) (entities.Rider, error) {
	logger := ResolveLogger(s.Logger)
	riderID = strings.TrimSpace(riderID)
	if riderID == "" {
		return entities.Rider{}, domainerrors.ErrInvalidRider
	}
	target, err := entities.ParseRiderStatus(rawStatus)
	if err != nil {
		return entities.Rider{}, err
	}

	current, err := s.Repo.GetRider(ctx, riderID)
	if err != nil {
		return entities.Rider{}, err
	}
	noop, err := services.EvaluateTransition(current.Status, target)
	if err != nil {
		logger.Warn("rider status transition rejected",
			"event", "rider_status_transition_rejected",
			"module", "fleet-operations/rider-directory",
			"layer", "application",
			"rider_id", riderID,
			"from", string(current.Status),
			"to", string(target),
		)
		return entities.Rider{}, err
	}
	if noop {
		return current, nil
	}

	updated, err := s.Repo.UpdateRiderStatus(ctx, riderID, current.Status, target, s.now())
	if err != nil {
		if errors.Is(err, domainerrors.ErrStatusChanged) {
			return entities.Rider{}, fmt.Errorf("%w: %w", domainerrors.ErrInvalidStatusTransition, err)
		}
		return entities.Rider{}, err
	}

	logger.Info("rider status updated",
		"event", "rider_status_updated",
		"module", "fleet-operations/rider-directory",
		"layer", "application",
		"rider_id", riderID,
		"from", string(current.Status),
		"to", string(target),
	)
	return updated, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
