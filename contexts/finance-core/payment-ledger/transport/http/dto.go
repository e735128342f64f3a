package httptransport

import "github.com/shopspring/decimal"

type PaymentDTO struct {
	PaymentID     string          `json:"payment_id"`
	ParcelID      string          `json:"parcel_id"`
	Email         string          `json:"email"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id"`
	PaidAt        string          `json:"paid_at"`
	Date          string          `json:"date"`
}

type RecordPaymentRequest struct {
	ParcelID      string          `json:"parcel_id"`
	Email         string          `json:"email"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id"`
}

type RecordPaymentResponse struct {
	InsertedID string     `json:"inserted_id"`
	Payment    PaymentDTO `json:"payment"`
}

type ListPaymentsResponse struct {
	Items []PaymentDTO `json:"items"`
}

// CreatePaymentIntentRequest takes amount_in_cents, or price in major units
// when amount_in_cents is absent.
type CreatePaymentIntentRequest struct {
	AmountInCents int64           `json:"amount_in_cents"`
	Price         decimal.Decimal `json:"price" swaggertype:"number"`
	Currency      string          `json:"currency"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	IntentID     string `json:"intent_id"`
	Amount       int64  `json:"amount_in_cents"`
	Currency     string `json:"currency"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
