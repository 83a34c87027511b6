package credential

import "errors"

var (
	ErrNotFound = errors.New("account not found")
	ErrInvalidInput = errors.New("invalid input")
)
