package payment

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("payment not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrGateway          = errors.New("gateway error")
)
