package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	usererrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
	userhttp "parcelhub/contexts/identity-access/user-directory/transport/http"
)

func writeUserError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, userhttp.ErrorResponse{Code: code, Message: message})
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usererrors.ErrRoleChangeForbidden):
		writeUserError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, usererrors.ErrUserNotFound):
		writeUserError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, usererrors.ErrInvalidUser),
		errors.Is(err, usererrors.ErrInvalidRole):
		writeUserError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeUserError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req userhttp.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be a JSON object")
		return
	}

	resp, err := s.users.Handler.UpsertUserHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	status := http.StatusOK
	if resp.Inserted {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := s.users.Handler.GetUserHandler(r.Context(), r.PathValue("email"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUserRole(w http.ResponseWriter, r *http.Request) {
	resp, err := s.users.Handler.GetRoleHandler(r.Context(), r.PathValue("email"))
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	r, identity, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var req userhttp.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.users.Handler.UpdateRoleHandler(r.Context(), identity.Subject, r.PathValue("email"), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
