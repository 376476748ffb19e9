// Package storage opens the ledger database, applies the embedded schema and
// vends the repositories bound to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ledgerkeeper/internal/assets"
	"github.com/dmitrijs2005/ledgerkeeper/internal/filex"
	"github.com/dmitrijs2005/ledgerkeeper/internal/ledger"
	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
	"github.com/dmitrijs2005/ledgerkeeper/internal/messages"
	"github.com/dmitrijs2005/ledgerkeeper/internal/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Store owns the database handle shared by all repositories.
type Store struct {
	DB     *sql.DB
	Driver string
}

// isPlainPath reports whether dsn is a file path rather than a URI or the
// in-memory database.
func isPlainPath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

// isInMemory reports whether dsn names a private in-memory sqlite database.
// Each pooled connection would otherwise see its own empty database.
func isInMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") || strings.Contains(dsn, "mode=memory")
}

// sqliteDSN turns a plain file path into a URI with foreign keys enabled.
// DSNs that already carry parameters are left alone.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	return dsn + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Open connects to dsn with driver ("sqlite" or "pgx"), runs migrations and
// returns the Store. The caller must Close it.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if !migrations.Supported(driver) {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if driver == DriverSQLite {
		if isPlainPath(dsn) {
			if _, err := filex.EnsureParentDir(dsn); err != nil {
				return nil, fmt.Errorf("failed to prepare database directory: %w", err)
			}
		}
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite && isInMemory(dsn) {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.Run(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{DB: db, Driver: driver}, nil
}

// Assets returns the asset repository, which also serves as the resolver for
// ledger actions.
func (s *Store) Assets() *assets.SQLRepository {
	return assets.NewSQLRepository(s.DB, s.Driver)
}

// Ledger returns a ledger action repository resolving assets from this store.
func (s *Store) Ledger(msgs messages.Sink, logger logging.Logger) *ledger.SQLRepository {
	return ledger.NewSQLRepository(s.DB, s.Assets(), msgs,
		ledger.WithDriver(s.Driver),
		ledger.WithLogger(logger.With("component", "ledger")),
	)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
