package review

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("review not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrForbidden          = errors.New("forbidden")
	ErrBookingNotComplete = errors.New("booking is not completed")
	ErrAlreadyReviewed    = errors.New("booking already reviewed")
)
