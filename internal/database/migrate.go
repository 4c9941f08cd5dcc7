package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"podcast-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator applies the embedded schema migrations for one dialect.
type Migrator struct {
	db     *sqlx.DB
	driver string
}

func NewMigrator(db *sqlx.DB, driver string) *Migrator {
	return &Migrator{db: db, driver: driver}
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	if m.driver == DriverOracle {
		return m.runFiles(".up.sql", false, 0)
	}

	mg, err := m.newMigrate()
	if err != nil {
		return err
	}
	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	logger.Get().Info("Migrations completed successfully", zap.String("driver", m.driver))
	return nil
}

// Down rolls back one migration, or all of them when all is true.
func (m *Migrator) Down(all bool) error {
	if m.driver == DriverOracle {
		limit := 1
		if all {
			limit = 0
		}
		return m.runFiles(".down.sql", true, limit)
	}

	mg, err := m.newMigrate()
	if err != nil {
		return err
	}
	if all {
		err = mg.Down()
	} else {
		err = mg.Steps(-1)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not roll back migrations: %w", err)
	}
	return nil
}

// newMigrate builds a migrate instance on top of the shared connection. The
// instance is never closed: closing it would close m.db as well.
func (m *Migrator) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, path.Join("migrations", m.driver))
	if err != nil {
		return nil, fmt.Errorf("could not open migrations for %s: %w", m.driver, err)
	}

	var drv migratedb.Driver
	switch m.driver {
	case DriverSQLite:
		drv, err = sqlite3.WithInstance(m.db.DB, &sqlite3.Config{})
	case DriverPostgres:
		drv, err = postgres.WithInstance(m.db.DB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver: %q", m.driver)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create migration driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", src, m.driver, drv)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	return mg, nil
}

// runFiles executes the embedded files with the given suffix one by one.
// Oracle has no golang-migrate driver here, so version tracking is left to
// the statements themselves, which tolerate already-applied changes.
func (m *Migrator) runFiles(suffix string, reverse bool, limit int) error {
	dir := path.Join("migrations", m.driver)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	for _, name := range names {
		content, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		if _, err := m.db.Exec(string(content)); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}
