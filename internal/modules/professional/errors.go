package professional

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("professional not found")
	ErrProfileExists = errors.New("professional profile already exists")
	ErrForbidden     = errors.New("forbidden")
)
