package errors

import "errors"

var (
	ErrRiderNotFound            = errors.New("rider not found")
	ErrInvalidRider             = errors.New("invalid rider application")
	ErrInvalidStatus            = errors.New("unknown rider status")
	ErrInvalidStatusTransition  = errors.New("rider status transition not allowed")
	ErrStatusChanged            = errors.New("rider status changed concurrently")
	ErrRepositoryInvariantBroke = errors.New("repository invariant broken")
)
