package errors

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidUser  = errors.New("user email is required")
	ErrInvalidRole  = errors.New("unknown role")

	ErrRoleChangeForbidden = errors.New("role change not permitted")
)
