package errors

import "errors"

var (
	ErrPaymentRejected          = errors.New("payment rejected")
	ErrParcelNotFound           = errors.New("parcel not found")
	ErrParcelAlreadyPaid        = errors.New("parcel already paid")
	ErrInvalidPayment           = errors.New("invalid payment request")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidPayer             = errors.New("payer email is required")
	ErrTransactionConflict      = errors.New("transaction id already used for a different payment")
	ErrProcessorFailure         = errors.New("payment processor failure")
	ErrRepositoryInvariantBroke = errors.New("repository invariant broken")
)
