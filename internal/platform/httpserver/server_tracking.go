package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	trackingerrors "parcelhub/contexts/parcel-logistics/tracking-log/domain/errors"
	trackinghttp "parcelhub/contexts/parcel-logistics/tracking-log/transport/http"
)

func writeTrackingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, trackinghttp.ErrorResponse{Code: code, Message: message})
}

func writeTrackingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trackingerrors.ErrInvalidTrackingEvent),
		errors.Is(err, trackingerrors.ErrInvalidQuery):
		writeTrackingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeTrackingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleAppendTracking(w http.ResponseWriter, r *http.Request) {
	r, identity, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var req trackinghttp.AppendTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTrackingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tracking.Handler.AppendTrackingHandler(r.Context(), identity.Subject, req)
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListTrackingByCode(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tracking.Handler.ListByTrackingCodeHandler(r.Context(), r.PathValue("tracking_code"))
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTrackingByParcel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tracking.Handler.ListByParcelHandler(r.Context(), r.PathValue("parcel_id"))
	if err != nil {
		writeTrackingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
