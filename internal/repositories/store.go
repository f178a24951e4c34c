// Package repositories selects and opens the configured storage backend.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/platform/config"
	"github.com/SscSPs/mobilepos_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/mobilepos_backend/internal/repositories/database/sqlite"
	"github.com/SscSPs/mobilepos_backend/pkg/database"
)

// Store is an opened, migrated database together with its repositories.
type Store struct {
	Repos portsrepo.RepositoryProvider
	close func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the database named by cfg.DBDriver, applies pending migrations and
// wires the repositories.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(cfg.DatabaseURL, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{Repos: pgsql.NewRepositoryProvider(pool), close: pool.Close}, nil

	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateSQLite(db.DB, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{Repos: sqlite.NewRepositoryProvider(db), close: func() { _ = db.Close() }}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
}
