package entities

import (
	"strings"
	"time"

	domainerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
)

const (
	StatusUpdate = "update"
	StatusPaid   = "paid"
)

// TrackingEvent is one immutable entry in a parcel's delivery history.
// RecordedAt and Sequence are assigned at append time.
type TrackingEvent struct {
	EventID      string
	TrackingCode string
	ParcelID     string
	Status       string
	Message      string
	UpdatedBy    string
	RecordedAt   time.Time
	Sequence     int64
}

func NewTrackingEvent(
	eventID string,
	trackingCode string,
	parcelID string,
	status string,
	message string,
	updatedBy string,
) (TrackingEvent, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" || strings.TrimSpace(eventID) == "" {
		return TrackingEvent{}, domainerrors.ErrInvalidTrackingEvent
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = StatusUpdate
	}
	return TrackingEvent{
		EventID:      eventID,
		TrackingCode: trackingCode,
		ParcelID:     strings.TrimSpace(parcelID),
		Status:       status,
		Message:      strings.TrimSpace(message),
		UpdatedBy:    strings.ToLower(strings.TrimSpace(updatedBy)),
	}, nil
}
