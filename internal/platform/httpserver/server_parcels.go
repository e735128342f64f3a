package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	parcelerrors "parcelhub/contexts/parcel-logistics/parcel-registry/domain/errors"
	parcelhttp "parcelhub/contexts/parcel-logistics/parcel-registry/transport/http"
	"parcelhub/internal/platform/metrics"
)

func writeParcelError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, parcelhttp.ErrorResponse{Code: code, Message: message})
}

func writeParcelDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, parcelerrors.ErrParcelNotFound):
		writeParcelError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, parcelerrors.ErrParcelAlreadyPaid):
		writeParcelError(w, http.StatusConflict, "already_paid", err.Error())
	case errors.Is(err, parcelerrors.ErrInvalidParcel),
		errors.Is(err, parcelerrors.ErrInvalidOwner),
		errors.Is(err, parcelerrors.ErrInvalidParcelID):
		writeParcelError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeParcelError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListParcels(w http.ResponseWriter, r *http.Request) {
	resp, err := s.parcels.Handler.ListAllParcelsHandler(r.Context())
	if err != nil {
		writeParcelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMyParcels(w http.ResponseWriter, r *http.Request) {
	r, identity, ok := s.authorize(w, r)
	if !ok {
		return
	}
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email != "" && !s.requireSubject(w, identity, email) {
		return
	}

	resp, err := s.parcels.Handler.ListMyParcelsHandler(r.Context(), email)
	if err != nil {
		writeParcelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetParcel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.parcels.Handler.GetParcelHandler(r.Context(), r.PathValue("parcel_id"))
	if err != nil {
		writeParcelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateParcel(w http.ResponseWriter, r *http.Request) {
	r, identity, ok := s.authorizeOptional(w, r)
	if !ok {
		return
	}

	var req parcelhttp.CreateParcelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
		writeParcelError(w, http.StatusBadRequest, "invalid_json", "request body must be a JSON object")
		return
	}

	resp, err := s.parcels.Handler.CreateParcelHandler(r.Context(), identity.Subject, req)
	if err != nil {
		writeParcelDomainError(w, err)
		return
	}
	metrics.ParcelsCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleDeleteParcel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.parcels.Handler.DeleteParcelHandler(r.Context(), r.PathValue("parcel_id"))
	if err != nil {
		writeParcelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
