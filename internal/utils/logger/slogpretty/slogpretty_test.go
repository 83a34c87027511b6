package slogpretty

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(Options{SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo}}.NewHandler(&buf))

	log.With("component", "session_service").Error("persist failed", "err", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, "persist failed")
	assert.Contains(t, out, `"component": "session_service"`)
	assert.Contains(t, out, `"err": "disk full"`)
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	h := Options{SlogOpts: &slog.HandlerOptions{Level: slog.LevelWarn}}.NewHandler(&buf)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
