package credential

import (
	"fmt"
	"strings"
)

// Validator checks registration input before it reaches the store.
type Validator interface {
	ValidateRegister(name, email, password string) error
}

// RequiredValidator only enforces presence, mirroring the sign-up form.
type RequiredValidator struct{}

func NewRequiredValidator() *RequiredValidator {
	return &RequiredValidator{}
}

func (v *RequiredValidator) ValidateRegister(name, email, password string) error {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
