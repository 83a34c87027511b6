package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Blank import registers the sqlite3 driver for database/sql.
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"digitalwill/internal/infrastructure/migration"
)

const (
	getQuery    = `SELECT value FROM snapshots WHERE key = ?`
	setQuery    = `INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteQuery = `DELETE FROM snapshots WHERE key = ?`
)

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New wraps an already migrated database.
func New(db *sql.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log.With("component", "sqlite_store")}
}

// Open creates the database file if needed and migrates it.
func Open(ctx context.Context, path string, engine migration.MigrationEngine, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	if err := migration.NewMigration(migration.SQLite3, "sqlite3://"+path, engine).Up(); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := New(db, log)
	s.log.Debug("opened", "path", path)
	return s, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, setQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
