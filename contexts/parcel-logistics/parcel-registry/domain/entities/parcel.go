package entities

import (
	"strings"
	"time"

	domainerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// reservedPayloadKeys are owned by the registry and never taken from the
// caller's shipment payload.
var reservedPayloadKeys = []string{
	"_id",
	"id",
	"parcel_id",
	"payment_status",
	"paid_at",
	"created_by",
	"created_at",
	"tracking_code",
}

// Parcel is a registered shipment. Sequence is assigned by storage and
// reflects creation order.
type Parcel struct {
	ParcelID      string
	TrackingCode  string
	OwnerEmail    string
	Payload       map[string]any
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	PaidAt        *time.Time
	Sequence      int64
}

func NewParcel(
	parcelID string,
	trackingCode string,
	ownerEmail string,
	payload map[string]any,
	createdAt time.Time,
) (Parcel, error) {
	owner := NormalizeOwner(ownerEmail)
	if strings.TrimSpace(parcelID) == "" || strings.TrimSpace(trackingCode) == "" {
		return Parcel{}, domainerrors.ErrInvalidParcel
	}
	if owner == "" {
		return Parcel{}, domainerrors.ErrInvalidOwner
	}
	return Parcel{
		ParcelID:      parcelID,
		TrackingCode:  trackingCode,
		OwnerEmail:    owner,
		Payload:       SanitizePayload(payload),
		PaymentStatus: PaymentStatusUnpaid,
		CreatedAt:     createdAt.UTC(),
	}, nil
}

func (p Parcel) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}

// SanitizePayload copies payload without registry-owned keys.
func SanitizePayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for key, value := range payload {
		out[key] = value
	}
	for _, key := range reservedPayloadKeys {
		delete(out, key)
	}
	return out
}

func NormalizeOwner(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
