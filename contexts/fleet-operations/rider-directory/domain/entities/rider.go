package entities

import (
	"strings"
	"time"

	domainerrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
)

type RiderStatus string

const (
	RiderStatusPending  RiderStatus = "pending"
	RiderStatusActive   RiderStatus = "active"
	RiderStatusRejected RiderStatus = "rejected"
	RiderStatusInactive RiderStatus = "inactive"
)

// ParseRiderStatus accepts the known statuses case-insensitively.
func ParseRiderStatus(raw string) (RiderStatus, error) {
	status := RiderStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case RiderStatusPending, RiderStatusActive, RiderStatusRejected, RiderStatusInactive:
		return status, nil
	default:
		return "", domainerrors.ErrInvalidStatus
	}
}

type Rider struct {
	RiderID   string
	Email     string
	Profile   map[string]any
	Status    RiderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	Sequence  int64
}

func NewRider(riderID string, email string, profile map[string]any, now time.Time) (Rider, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if strings.TrimSpace(riderID) == "" || email == "" {
		return Rider{}, domainerrors.ErrInvalidRider
	}
	cleaned := make(map[string]any, len(profile))
	for key, value := range profile {
		switch key {
		case "_id", "id", "rider_id", "status", "created_at", "updated_at":
			continue
		}
		cleaned[key] = value
	}
	now = now.UTC()
	return Rider{
		RiderID:   riderID,
		Email:     email,
		Profile:   cleaned,
		Status:    RiderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
