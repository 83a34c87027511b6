package session

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrDuplicateRegistration = errors.New("an account with this email already exists")
	ErrCorruptSnapshot       = errors.New("corrupt session snapshot")
	ErrClosed                = errors.New("session service closed")
)
