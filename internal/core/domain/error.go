package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderExists     = errors.New("order id already exists")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrInvalidSignature = errors.New("webhook signature is invalid")
	ErrUnauthorized     = errors.New("caller is unauthorized to access the resource")

	// * Business errors.
	ErrInvalidRequest     = errors.New("invalid order request")
	ErrUnknownProduct     = errors.New("product is not in the catalog")
	ErrOrderStateConflict = errors.New("order is not in the expected status")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
	ErrNotificationFailed = errors.New("notification channel delivery failed")
	ErrUnknownOutcome     = errors.New("unknown payment outcome")
)
