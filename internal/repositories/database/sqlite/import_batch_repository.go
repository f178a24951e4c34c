package sqlite

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/models"
	"github.com/SscSPs/mobilepos_backend/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

// ImportBatchRepository stores import audit records in SQLite.
type ImportBatchRepository struct {
	db *sqlx.DB
}

func newImportBatchRepository(db *sqlx.DB) portsrepo.ImportBatchRepositoryFacade {
	return &ImportBatchRepository{db: db}
}

func (r *ImportBatchRepository) SaveImportBatch(ctx context.Context, batch domain.ImportBatch) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO import_batches (
			import_batch_id, kind, file_name, submitted, created, status,
			error_message, created_at, created_by
		) VALUES (
			:import_batch_id, :kind, :file_name, :submitted, :created, :status,
			:error_message, :created_at, :created_by
		)`, mapping.ToModelImportBatch(batch))
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save import batch", err)
	}
	return nil
}

func (r *ImportBatchRepository) ListImportBatches(ctx context.Context, limit int, before *time.Time) ([]domain.ImportBatch, error) {
	query := `
		SELECT import_batch_id, kind, file_name, submitted, created, status,
			error_message, created_at, created_by
		FROM import_batches`
	args := []any{}
	if before != nil {
		query += ` WHERE created_at < ?`
		args = append(args, before.UTC())
	}
	query += ` ORDER BY created_at DESC, import_batch_id DESC LIMIT ?`
	args = append(args, limit)

	var rows []models.ImportBatch
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list import batches", err)
	}
	return mapping.ToDomainImportBatches(rows), nil
}
