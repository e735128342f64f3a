package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	paymenterrors "parcelhub/contexts/finance-core/payment-ledger/domain/errors"
	paymenthttp "parcelhub/contexts/finance-core/payment-ledger/transport/http"
	"parcelhub/internal/platform/metrics"
)

func writePaymentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, paymenthttp.ErrorResponse{Code: code, Message: message})
}

func writePaymentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymenterrors.ErrParcelNotFound):
		writePaymentError(w, http.StatusNotFound, "parcel_not_found", err.Error())
	case errors.Is(err, paymenterrors.ErrParcelAlreadyPaid):
		writePaymentError(w, http.StatusConflict, "already_paid", err.Error())
	case errors.Is(err, paymenterrors.ErrTransactionConflict):
		writePaymentError(w, http.StatusConflict, "transaction_conflict", err.Error())
	case errors.Is(err, paymenterrors.ErrInvalidPayment),
		errors.Is(err, paymenterrors.ErrInvalidAmount),
		errors.Is(err, paymenterrors.ErrInvalidPayer):
		writePaymentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, paymenterrors.ErrProcessorFailure):
		writePaymentError(w, http.StatusBadGateway, "processor_error", "payment processor request failed")
	default:
		writePaymentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// rejectionReason labels the payments_rejected counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, paymenterrors.ErrParcelNotFound):
		return "parcel_not_found"
	case errors.Is(err, paymenterrors.ErrParcelAlreadyPaid):
		return "already_paid"
	case errors.Is(err, paymenterrors.ErrTransactionConflict):
		return "transaction_conflict"
	case errors.Is(err, paymenterrors.ErrInvalidPayment),
		errors.Is(err, paymenterrors.ErrInvalidAmount),
		errors.Is(err, paymenterrors.ErrInvalidPayer):
		return "invalid"
	default:
		return "error"
	}
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req paymenthttp.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.PaymentsRejectedTotal.WithLabelValues("invalid").Inc()
		writePaymentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payments.Handler.RecordPaymentHandler(r.Context(), req)
	if err != nil {
		metrics.PaymentsRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
		writePaymentDomainError(w, err)
		return
	}
	metrics.PaymentsRecordedTotal.Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	r, identity, ok := s.authorize(w, r)
	if !ok {
		return
	}
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		email = identity.Subject
	}
	if !s.requireSubject(w, identity, email) {
		return
	}

	resp, err := s.payments.Handler.ListPaymentsHandler(r.Context(), email)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymenthttp.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePaymentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payments.Handler.CreatePaymentIntentHandler(r.Context(), req)
	if err != nil {
		writePaymentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
