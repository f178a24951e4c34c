package services

import (
	"context"
	"io"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
)

// ImportReaderSvc covers the side-effect free part of an import.
type ImportReaderSvc interface {
	// Preview reads and validates an uploaded file.
	Preview(ctx context.Context, kind domain.EntityKind, fileName string, r io.Reader) (*domain.ImportPreview, error)

	// Template returns the example document for kind.
	Template(kind domain.EntityKind) domain.ImportTemplate

	// ListBatches returns a page of committed imports, newest first, and the token of the next page.
	ListBatches(ctx context.Context, limit int, nextToken string) ([]domain.ImportBatch, string, error)
}

// ImportWriterSvc creates the entities of a previewed import.
type ImportWriterSvc interface {
	// Commit creates the rows one at a time, in order, and stops at the first failure.
	// The result is returned even when err is non-nil.
	Commit(ctx context.Context, kind domain.EntityKind, req dto.ImportCommitRequest, userID, authToken string) (*domain.BulkCreateResult, error)
}

// ImportSvcFacade combines all import-related service interfaces
type ImportSvcFacade interface {
	ImportReaderSvc
	ImportWriterSvc
}
