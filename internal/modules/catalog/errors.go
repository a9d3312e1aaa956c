package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("service not found")
	ErrNameTaken  = errors.New("service name already exists")
)
