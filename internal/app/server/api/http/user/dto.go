package user

import (
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/session"
)

type loginInput struct {
	Body struct {
		Email    string `json:"email" example:"user@example.com"`
		Password string `json:"password" example:"password"`
	}
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	User session.Session `json:"user"`
	workspace.Feedback
}

type registerInput struct {
	Body struct {
		Name     string `json:"name,omitempty"`
		Email    string `json:"email,omitempty"`
		Password string `json:"password,omitempty"`
	}
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID string `json:"user_id"`
	workspace.Feedback
}

type logoutInput struct{}

type logoutOutput struct {
	Body workspace.Feedback
}

type sessionInput struct{}

type sessionOutput struct {
	Body SessionResponse
}

type SessionResponse struct {
	State string           `json:"state" enum:"unauthenticated,loading,authenticated"`
	User  *session.Session `json:"user,omitempty"`
}
