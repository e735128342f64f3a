package errors

import "errors"

var (
	ErrInvalidTrackingEvent     = errors.New("tracking code is required")
	ErrInvalidQuery             = errors.New("tracking query requires a code or parcel id")
	ErrInvalidEventPayload      = errors.New("invalid integration event payload")
	ErrDuplicateEventConflict   = errors.New("event id reused with a different payload")
	ErrRepositoryInvariantBroke = errors.New("repository invariant broken")
)
