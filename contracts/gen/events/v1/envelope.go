package v1

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical, versioned event envelope for cross-context use.
// This package is contract-only and must stay backward compatible.
type Envelope struct {
	EventID          string          `json:"event_id"`
	EventType        string          `json:"event_type"`
	OccurredAt       time.Time       `json:"occurred_at"`
	SourceService    string          `json:"source_service"`
	TraceID          string          `json:"trace_id"`
	SchemaVersion    int             `json:"schema_version"`
	PartitionKeyPath string          `json:"partition_key_path"`
	PartitionKey     string          `json:"partition_key"`
	Data             json.RawMessage `json:"data"`
}

const (
	// TopicPaymentRecorded carries PaymentRecordedData.
	TopicPaymentRecorded = "payment.recorded"
)

// PaymentRecordedData is the payload of a payment.recorded envelope.
type PaymentRecordedData struct {
	PaymentID     string `json:"payment_id"`
	ParcelID      string `json:"parcel_id"`
	TrackingCode  string `json:"tracking_code,omitempty"`
	PayerEmail    string `json:"payer_email"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	PaidAt        string `json:"paid_at"`
}
