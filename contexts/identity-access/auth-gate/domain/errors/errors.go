package errors

import "errors"

var (
	ErrUnauthenticated   = errors.New("authorization bearer credential is required")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrTokenExpired      = errors.New("credential has expired")
	ErrTokenRevoked      = errors.New("credential has been revoked")
	ErrAudienceMismatch  = errors.New("credential audience does not match")
)
