package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/session"
)

// StateReporter is the slice of the session controller health needs.
type StateReporter interface {
	State() session.State
}

type Handler struct {
	session    StateReporter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(session StateReporter, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.probeOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	state := h.session.State()
	h.log.Debug("health probed", "session", state.String())

	return &Output{
		Body: Response{
			Status:  "OK",
			Session: state.String(),
		},
	}, nil
}
