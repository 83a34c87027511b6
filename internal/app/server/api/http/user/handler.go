package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/server/api/http/respond"
	"digitalwill/internal/app/workspace"
	"digitalwill/internal/domain/credential"
	"digitalwill/internal/domain/session"
)

type Handler struct {
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		session:    session,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.sessionOp(), h.current)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	sess, err := h.session.Login(ctx, input.Body.Email, input.Body.Password)
	fb := workspace.MustFrom(ctx).Drain()
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil, respond.New(http.StatusUnauthorized, err.Error(), fb)
		}
		h.log.Error("login", "error", err)
		return nil, huma.Error500InternalServerError(fmt.Sprintf("login: %v", err))
	}

	return &loginOutput{Body: LoginResponse{User: sess, Feedback: fb}}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	id, err := h.session.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	fb := workspace.MustFrom(ctx).Drain()
	switch {
	case errors.Is(err, session.ErrDuplicateRegistration):
		return nil, respond.New(http.StatusConflict, err.Error(), fb)
	case errors.Is(err, credential.ErrInvalidInput):
		return nil, respond.New(http.StatusUnprocessableEntity, err.Error(), fb)
	case err != nil:
		h.log.Error("register", "error", err)
		return nil, huma.Error500InternalServerError(fmt.Sprintf("register: %v", err))
	}

	return &registerOutput{Body: RegisterResponse{ID: id, Feedback: fb}}, nil
}

func (h *Handler) logout(ctx context.Context, _ *logoutInput) (*logoutOutput, error) {
	err := h.session.Logout(ctx)
	fb := workspace.MustFrom(ctx).Drain()
	if err != nil {
		// The session is already cleared; only the stored copy lingers.
		h.log.Warn("logout", "error", err)
	}

	return &logoutOutput{Body: fb}, nil
}

func (h *Handler) current(_ context.Context, _ *sessionInput) (*sessionOutput, error) {
	out := &sessionOutput{Body: SessionResponse{State: h.session.State().String()}}
	if sess, ok := h.session.Current(); ok {
		out.Body.User = &sess
	}
	return out, nil
}
