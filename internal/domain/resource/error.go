package resource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidationIncomplete = errors.New("required fields missing")
	ErrUnknownIDScheme      = errors.New("unknown id scheme")
	ErrClosed               = errors.New("resource list closed")
)

// ValidationError names the required fields a draft was missing.
type ValidationError struct {
	Kind    string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, ErrValidationIncomplete, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationIncomplete
}
