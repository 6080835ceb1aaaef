package sqldb

import (
	"database/sql"
	"fmt"

	"soroia/internal/catalog/repository"
	"soroia/pkg/log"
)

// Driver names registered by the imported drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	opt repository.Options
}

// New creates a database/sql-backed Repository for the catalog.
func New(db *sql.DB, l log.Logger, opt repository.Options) repository.Repository {
	if db == nil {
		panic("catalog/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l, opt: opt}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/sqldb.%s", method)
}

// placeholder returns the positional parameter syntax of the driver.
func (r *implRepository) placeholder(n int) string {
	if r.opt.Driver == DriverSQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}
