package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/session"
)

// Auth rejects requests while no session is held. It is the HTTP face of
// the route gate.
type Auth struct {
	api     huma.API
	session session.Servicer
	log     *slog.Logger
}

func New(api huma.API, session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		api:     api,
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.session.IsAuthenticated() {
			a.log.Debug("rejected unauthenticated request", "path", ctx.URL().Path)
			if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, "Please log in to continue"); err != nil {
				a.log.Error("write error response", "error", err)
			}
			return
		}

		next(ctx)
	}
}
