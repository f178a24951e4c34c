package pgsql

import (
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository onto one PostgreSQL pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SettingsRepo:    newPgxSettingsRepository(dbPool),
		ImportBatchRepo: newPgxImportBatchRepository(dbPool),
	}
}
