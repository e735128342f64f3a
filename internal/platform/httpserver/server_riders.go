package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	ridererrors "parcelhub/contexts/fleet-operations/rider-directory/domain/errors"
	riderhttp "parcelhub/contexts/fleet-operations/rider-directory/transport/http"
)

func writeRiderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, riderhttp.ErrorResponse{Code: code, Message: message})
}

func writeRiderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ridererrors.ErrRiderNotFound):
		writeRiderError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ridererrors.ErrInvalidStatusTransition):
		writeRiderError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, ridererrors.ErrInvalidRider),
		errors.Is(err, ridererrors.ErrInvalidStatus):
		writeRiderError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRiderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSubmitRiderApplication(w http.ResponseWriter, r *http.Request) {
	var req riderhttp.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
		writeRiderError(w, http.StatusBadRequest, "invalid_json", "request body must be a JSON object")
		return
	}

	resp, err := s.riders.Handler.SubmitApplicationHandler(r.Context(), req)
	if err != nil {
		writeRiderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListRiders(w http.ResponseWriter, r *http.Request) {
	resp, err := s.riders.Handler.ListRidersHandler(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeRiderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateRiderStatus(w http.ResponseWriter, r *http.Request) {
	var req riderhttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRiderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.riders.Handler.UpdateStatusHandler(r.Context(), r.PathValue("rider_id"), req)
	if err != nil {
		writeRiderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
