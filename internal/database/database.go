package database

import (
	"fmt"

	"podcast-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver
	"go.uber.org/zap"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name binds.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings a database for one of the supported drivers.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres, DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// a single writer avoids "database is locked" under concurrent requests
		db.SetMaxOpenConns(1)
	}

	logger.Get().Info("Successfully connected to database", zap.String("driver", driver))
	return db, nil
}
