package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"digitalwill/internal/config"
	"digitalwill/internal/utils/logger/slogpretty"
)

// New builds the logger for env: pretty text in local, JSON elsewhere.
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

// NewLevel is New with an explicit level. An empty or unknown level keeps
// the env default.
func NewLevel(env, level string) *slog.Logger {
	var lvl slog.Level
	if level == "" || lvl.UnmarshalText([]byte(level)) != nil {
		return New(env)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if env == config.EnvLocal {
		return slog.New(slogpretty.Options{SlogOpts: opts}.NewHandler(os.Stdout))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.Options{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewHandler(os.Stdout))
}
