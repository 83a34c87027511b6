package dashboard

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/route"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.dashboardOp(), h.dashboard)
}

func (h *Handler) dashboard(ctx context.Context, _ *Input) (*Output, error) {
	ws := workspace.MustFrom(ctx)

	d, err := ws.Dashboard()
	if errors.Is(err, workspace.ErrNotAuthenticated) {
		return nil, huma.Error401Unauthorized("Please log in to continue")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("dashboard", err)
	}

	counts := map[route.Destination]int{
		route.Documents: d.Stats.Documents,
		route.Crypto:    d.Stats.Cryptocurrencies,
		route.Nominees:  d.Stats.Nominees,
		route.Contacts:  d.Stats.Contacts,
	}
	sections := make([]Section, 0, len(counts))
	for _, dest := range route.Authenticated {
		if n, ok := counts[dest]; ok {
			sections = append(sections, Section{Label: dest.Label(), Path: dest.String(), Count: n})
		}
	}

	return &Output{
		Body: DashboardResponse{
			Greeting: "Welcome back, " + d.User.Name,
			User:     d.User,
			Stats:    d.Stats,
			Sections: sections,
			Feedback: ws.Drain(),
		},
	}, nil
}
