package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/models"
	"github.com/SscSPs/mobilepos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxImportBatchRepository stores import audit records in PostgreSQL.
type PgxImportBatchRepository struct {
	BaseRepository
}

func newPgxImportBatchRepository(db *pgxpool.Pool) portsrepo.ImportBatchRepositoryFacade {
	return &PgxImportBatchRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *PgxImportBatchRepository) SaveImportBatch(ctx context.Context, batch domain.ImportBatch) error {
	m := mapping.ToModelImportBatch(batch)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO import_batches (
			import_batch_id, kind, file_name, submitted, created, status,
			error_message, created_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ImportBatchID, m.Kind, m.FileName, m.Submitted, m.Created, m.Status,
		m.ErrorMessage, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(http.StatusConflict, "import batch already recorded", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save import batch", err)
	}
	return nil
}

func (r *PgxImportBatchRepository) ListImportBatches(ctx context.Context, limit int, before *time.Time) ([]domain.ImportBatch, error) {
	query := `
		SELECT import_batch_id, kind, file_name, submitted, created, status,
			error_message, created_at, created_by
		FROM import_batches`
	args := []any{}
	if before != nil {
		query += ` WHERE created_at < $1`
		args = append(args, *before)
	}
	query += ` ORDER BY created_at DESC, import_batch_id DESC LIMIT ` + placeholder(len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list import batches", err)
	}
	batches, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ImportBatch])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan import batches", err)
	}
	return mapping.ToDomainImportBatches(batches), nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
