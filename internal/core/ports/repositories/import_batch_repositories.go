package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
)

// ImportBatchReader defines read operations for import audit records.
type ImportBatchReader interface {
	// ListImportBatches returns up to limit batches created strictly before the given time, newest first.
	ListImportBatches(ctx context.Context, limit int, before *time.Time) ([]domain.ImportBatch, error)
}

// ImportBatchWriter defines write operations for import audit records.
type ImportBatchWriter interface {
	SaveImportBatch(ctx context.Context, batch domain.ImportBatch) error
}

// ImportBatchRepositoryFacade combines all import batch repository interfaces.
type ImportBatchRepositoryFacade interface {
	ImportBatchReader
	ImportBatchWriter
}
