// Package sqlite implements the repositories on an embedded SQLite database for single-shop deployments.
package sqlite

import (
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// NewRepositoryProvider wires every repository onto one SQLite handle.
func NewRepositoryProvider(db *sqlx.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SettingsRepo:    newSettingsRepository(db),
		ImportBatchRepo: newImportBatchRepository(db),
	}
}
