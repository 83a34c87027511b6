package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/infrastructure/migration"
)

func TestStorage_RoundTrip(t *testing.T) {
	uri := os.Getenv("DIGITALWILL_TEST_POSTGRES")
	if uri == "" {
		t.Skip("DIGITALWILL_TEST_POSTGRES not set")
	}
	ctx := context.Background()

	s, err := New(ctx, uri, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	key := "test-" + t.Name()
	t.Cleanup(func() { _ = s.Delete(ctx, key) })

	require.NoError(t, s.Set(ctx, key, []byte("a")))
	require.NoError(t, s.Set(ctx, key, []byte("b")))

	got, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
