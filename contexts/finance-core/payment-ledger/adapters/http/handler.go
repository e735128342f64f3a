package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "parcelhub/contexts/finance-core/payment-ledger/application"
	"parcelhub/contexts/finance-core/payment-ledger/application/commands"
	"parcelhub/contexts/finance-core/payment-ledger/application/queries"
	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
	httptransport "parcelhub/contexts/finance-core/payment-ledger/transport/http"
)

type Handler struct {
	RecordPayment       commands.RecordPaymentUseCase
	CreatePaymentIntent commands.CreatePaymentIntentUseCase
	ListPayments        queries.ListPaymentsUseCase
	Logger              *slog.Logger
}

// RecordPaymentHandler godoc
// @Summary Record a payment
// @Description Marks the parcel paid and appends one ledger entry. A paid parcel, including a repeat of the same transaction, is rejected with 409.
// @Tags payment-ledger
// @Accept json
// @Produce json
// @Param request body httptransport.RecordPaymentRequest true "Payment"
// @Success 201 {object} httptransport.RecordPaymentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payments [post]
func (h Handler) RecordPaymentHandler(
	ctx context.Context,
	req httptransport.RecordPaymentRequest,
) (httptransport.RecordPaymentResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	result, err := h.RecordPayment.Execute(ctx, commands.RecordPaymentCommand{
		ParcelID:      req.ParcelID,
		PayerEmail:    req.Email,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		logger.Warn("record payment request failed",
			"event", "http_record_payment_failed",
			"module", "finance-core/payment-ledger",
			"layer", "transport",
			"parcel_id", req.ParcelID,
			"error", err.Error(),
		)
		return httptransport.RecordPaymentResponse{}, err
	}
	return httptransport.RecordPaymentResponse{
		InsertedID: result.Payment.PaymentID,
		Payment:    mapPayment(result.Payment),
	}, nil
}

// ListPaymentsHandler godoc
// @Summary List payments by payer
// @Description Returns the caller's ledger entries newest first.
// @Tags payment-ledger
// @Produce json
// @Security BearerAuth
// @Param email query string true "Payer email; must match the bearer subject"
// @Success 200 {object} httptransport.ListPaymentsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payments [get]
func (h Handler) ListPaymentsHandler(ctx context.Context, payerEmail string) (httptransport.ListPaymentsResponse, error) {
	items, err := h.ListPayments.Execute(ctx, payerEmail)
	if err != nil {
		return httptransport.ListPaymentsResponse{}, err
	}
	out := make([]httptransport.PaymentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, mapPayment(item))
	}
	return httptransport.ListPaymentsResponse{Items: out}, nil
}

// CreatePaymentIntentHandler godoc
// @Summary Create a card payment intent
// @Description Asks the card processor for a client secret. One attempt, no retry.
// @Tags payment-ledger
// @Accept json
// @Produce json
// @Param request body httptransport.CreatePaymentIntentRequest true "Amount in minor units"
// @Success 200 {object} httptransport.CreatePaymentIntentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 502 {object} httptransport.ErrorResponse
// @Router /create-payment-intent [post]
func (h Handler) CreatePaymentIntentHandler(
	ctx context.Context,
	req httptransport.CreatePaymentIntentRequest,
) (httptransport.CreatePaymentIntentResponse, error) {
	intent, err := h.CreatePaymentIntent.Execute(ctx, commands.CreatePaymentIntentCommand{
		AmountMinor: req.AmountInCents,
		Amount:      req.Price,
		Currency:    req.Currency,
	})
	if err != nil {
		return httptransport.CreatePaymentIntentResponse{}, err
	}
	return httptransport.CreatePaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		IntentID:     intent.IntentID,
		Amount:       intent.AmountMinor,
		Currency:     intent.Currency,
	}, nil
}

func mapPayment(payment entities.Payment) httptransport.PaymentDTO {
	return httptransport.PaymentDTO{
		PaymentID:     payment.PaymentID,
		ParcelID:      payment.ParcelID,
		Email:         payment.PayerEmail,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Method:        payment.Method,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt.UTC().Format(time.RFC3339Nano),
		Date:          payment.PaidAtString,
	}
}
