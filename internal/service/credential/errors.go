package credential

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid credential name")
	ErrInvalidRole           = errors.New("invalid role")
)
