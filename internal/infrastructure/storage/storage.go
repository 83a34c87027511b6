// Package storage opens the key/value store that holds the session snapshot.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slog"

	"digitalwill/internal/infrastructure/migration"
	"digitalwill/internal/infrastructure/storage/memory"
	"digitalwill/internal/infrastructure/storage/postgres"
	"digitalwill/internal/infrastructure/storage/redis"
	"digitalwill/internal/infrastructure/storage/sqlite"
)

var ErrUnsupportedScheme = errors.New("unsupported storage scheme")

// Storage is a small key/value store. Get reports a missing key with
// ok == false and a nil error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	_ Storage = (*memory.Store)(nil)
	_ Storage = (*sqlite.Store)(nil)
	_ Storage = (*postgres.Storage)(nil)
	_ Storage = (*redis.Store)(nil)
)

// Open picks a backend from the URI scheme: memory://, sqlite3://<path>,
// postgres://, postgresql://, redis:// or rediss://.
func Open(ctx context.Context, uri string, log *slog.Logger) (Storage, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, uri)
	}

	switch scheme {
	case "memory":
		return memory.New(), nil
	case "sqlite3":
		path, err := ExpandHome(rest)
		if err != nil {
			return nil, err
		}
		return sqlite.Open(ctx, path, migration.DefaultEngine, log)
	case "postgres", "postgresql":
		return postgres.New(ctx, uri, migration.DefaultEngine, log)
	case "redis", "rediss":
		return redis.New(ctx, uri, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
