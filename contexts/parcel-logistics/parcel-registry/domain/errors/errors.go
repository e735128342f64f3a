package errors

import "errors"

var (
	ErrParcelNotFound           = errors.New("parcel not found")
	ErrParcelAlreadyPaid        = errors.New("parcel already paid")
	ErrNotFoundOrAlreadyPaid    = errors.New("parcel not found or already paid")
	ErrInvalidParcel            = errors.New("invalid parcel")
	ErrInvalidOwner             = errors.New("parcel owner is required")
	ErrInvalidParcelID          = errors.New("parcel id is required")
	ErrRepositoryInvariantBroke = errors.New("repository invariant broken")
)
