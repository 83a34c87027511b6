package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers migrate opens by URL scheme.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

type Dialect string

const (
	SQLite3  Dialect = "sqlite3"
	Postgres Dialect = "postgres"
)

func (d Dialect) dir() string {
	return "migrations/" + string(d)
}

// Migrator is the part of migrate.Migrate the snapshot stores rely on.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a Migrator from an embedded migrations directory.
// Tests swap it to avoid touching a database.
type MigrationEngine func(dir, databaseURL string) (Migrator, error)

type Migration struct {
	dialect     Dialect
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(dialect Dialect, databaseURL string, engine MigrationEngine) *Migration {
	return &Migration{
		dialect:     dialect,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

func DefaultEngine(dir, databaseURL string) (Migrator, error) {
	src, err := iofs.New(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dir, err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.dialect.dir(), mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up (%s): %w", mg.dialect, err)
	}
	return nil
}
