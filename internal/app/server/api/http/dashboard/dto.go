package dashboard

import (
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/estate"
	"digitalwill/internal/domain/session"
)

type Input struct{}

type Output struct {
	Body DashboardResponse
}

type DashboardResponse struct {
	Greeting string          `json:"greeting" example:"Welcome back, John Doe"`
	User     session.Session `json:"user"`
	Stats    estate.Stats    `json:"stats"`
	Sections []Section       `json:"sections"`
	workspace.Feedback
}

// Section is a navigation card on the dashboard.
type Section struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Count int    `json:"count"`
}
