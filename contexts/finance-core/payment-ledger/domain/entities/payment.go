package entities

import (
	"strings"
	"time"

	domainerrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"

	"github.com/shopspring/decimal"
)

const DefaultMethod = "card"

// Payment is one immutable ledger entry. PaidAtString is the canonical
// RFC3339 rendering of PaidAt and is stored alongside it.
type Payment struct {
	PaymentID     string
	ParcelID      string
	PayerEmail    string
	Amount        decimal.Decimal
	Currency      string
	Method        string
	TransactionID string
	PaidAt        time.Time
	PaidAtString  string
}

func NewPayment(
	paymentID string,
	parcelID string,
	payerEmail string,
	amount decimal.Decimal,
	currency string,
	method string,
	transactionID string,
	paidAt time.Time,
) (Payment, error) {
	if strings.TrimSpace(paymentID) == "" ||
		strings.TrimSpace(parcelID) == "" ||
		strings.TrimSpace(transactionID) == "" {
		return Payment{}, domainerrors.ErrInvalidPayment
	}
	payer := NormalizeEmail(payerEmail)
	if payer == "" {
		return Payment{}, domainerrors.ErrInvalidPayer
	}
	if !amount.IsPositive() {
		return Payment{}, domainerrors.ErrInvalidAmount
	}
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		method = DefaultMethod
	}
	paidAt = paidAt.UTC()
	return Payment{
		PaymentID:     paymentID,
		ParcelID:      strings.TrimSpace(parcelID),
		PayerEmail:    payer,
		Amount:        amount,
		Currency:      strings.ToLower(strings.TrimSpace(currency)),
		Method:        method,
		TransactionID: strings.TrimSpace(transactionID),
		PaidAt:        paidAt,
		PaidAtString:  paidAt.Format(time.RFC3339),
	}, nil
}

// SameRequest reports whether the given fields describe this payment,
// used to tell a repeated submission from a conflicting reuse of a
// transaction id.
func (p Payment) SameRequest(parcelID string, payerEmail string, amount decimal.Decimal) bool {
	return p.ParcelID == strings.TrimSpace(parcelID) &&
		p.PayerEmail == NormalizeEmail(payerEmail) &&
		p.Amount.Equal(amount)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
