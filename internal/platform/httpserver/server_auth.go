package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
	autherrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
	authhttp "parcelhub/contexts/identity-access/auth-gate/transport/http"
)

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{Code: code, Message: message})
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrUnauthenticated):
		writeAuthError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
	case errors.Is(err, autherrors.ErrForbidden):
		writeAuthError(w, http.StatusForbidden, "forbidden", "forbidden access")
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// authorize runs the guard and returns the request rebound to the
// identity-carrying context. On failure the error response is already written.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (*http.Request, entities.VerifiedIdentity, bool) {
	ctx, identity, err := s.auth.Guard.Authorize(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeAuthDomainError(w, err)
		return r, entities.VerifiedIdentity{}, false
	}
	return r.WithContext(ctx), identity, true
}

// authorizeOptional treats a missing Authorization header as anonymous. A
// header that is present must still verify.
func (s *Server) authorizeOptional(w http.ResponseWriter, r *http.Request) (*http.Request, entities.VerifiedIdentity, bool) {
	if strings.TrimSpace(r.Header.Get("Authorization")) == "" {
		return r, entities.VerifiedIdentity{}, true
	}
	return s.authorize(w, r)
}

func (s *Server) requireSubject(w http.ResponseWriter, identity entities.VerifiedIdentity, subject string) bool {
	if err := s.auth.Guard.RequireSubject(identity, subject); err != nil {
		writeAuthDomainError(w, err)
		return false
	}
	return true
}
