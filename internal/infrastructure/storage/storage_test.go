package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/infrastructure/storage/memory"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), "memory://", slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, s)
	assert.NoError(t, s.Close())
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(ctx, "sqlite3://"+path, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "digitalWillUser", []byte(`{}`)))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Unsupported(t *testing.T) {
	tests := []string{"", "mysql://localhost/db", "state.db"}
	for _, uri := range tests {
		_, err := Open(context.Background(), uri, slog.Default())
		assert.ErrorIs(t, err, ErrUnsupportedScheme, uri)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/.digitalwill/state.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".digitalwill", "state.db"), got)

	got, err = ExpandHome("/var/lib/state.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/state.db", got)
}
