// Package respond shapes handler errors so the client still receives the
// notifications raised while serving the request.
package respond

import (
	"net/http"

	"digitalwill/internal/app/workspace"
)

// Error is a huma status error whose body carries feedback.
type Error struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	workspace.Feedback
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) GetStatus() int {
	return e.Status
}

func New(status int, detail string, fb workspace.Feedback) *Error {
	return &Error{
		Status:   status,
		Title:    http.StatusText(status),
		Detail:   detail,
		Feedback: fb,
	}
}
