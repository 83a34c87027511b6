package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/session"
)

// StateReporter exposes the session state recorded with every request.
type StateReporter interface {
	State() session.State
}

// Logger writes one access line per request, tagged with the chi request id
// and the session state the request left behind.
type Logger struct {
	session StateReporter
	log     *slog.Logger
}

func New(log *slog.Logger, session StateReporter) *Logger {
	return &Logger{
		session: session,
		log:     log.With(slog.String("component", "http_access")),
	}
}

func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		status := ctx.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		l.log.Log(ctx.Context(), level, "request served",
			slog.String("request_id", chimw.GetReqID(ctx.Context())),
			slog.String("op", ctx.Operation().OperationID),
			slog.String("path", ctx.URL().Path),
			slog.Int("status", status),
			slog.String("session", l.session.State().String()),
			slog.Duration("took", time.Since(start)),
		)
	}
}
