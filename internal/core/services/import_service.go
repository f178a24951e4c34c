package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/utils/csvimport"
	"github.com/SscSPs/mobilepos_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// User-facing rejections of non-CSV uploads.
const (
	MsgExcelNotSupported   = "Actualmente solo se soporta formato CSV. Para Excel, por favor conviértalo a CSV primero."
	MsgUnsupportedFileType = "Formato de archivo no soportado. Use CSV o Excel."
)

// DefaultImportMaxBytes bounds the size of an uploaded file.
const DefaultImportMaxBytes = 5 << 20

type importService struct {
	BaseService
	catalog  gateways.CatalogGateway
	batches  portsrepo.ImportBatchRepositoryFacade
	archiver gateways.FileArchiver
	maxBytes int64
}

// ImportOption is a functional option for configuring the import service
type ImportOption func(*importService)

// WithArchiver keeps a copy of every previewed file.
func WithArchiver(a gateways.FileArchiver) ImportOption {
	return func(s *importService) {
		s.archiver = a
	}
}

// WithMaxBytes overrides DefaultImportMaxBytes.
func WithMaxBytes(n int64) ImportOption {
	return func(s *importService) {
		if n > 0 {
			s.maxBytes = n
		}
	}
}

// NewImportService creates the import service with the provided options
func NewImportService(catalog gateways.CatalogGateway, batches portsrepo.ImportBatchRepositoryFacade, options ...ImportOption) portssvc.ImportSvcFacade {
	svc := &importService{
		catalog:  catalog,
		batches:  batches,
		maxBytes: DefaultImportMaxBytes,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

// CheckFileType accepts .csv names only. Excel files get their own message.
func CheckFileType(fileName string) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return nil
	case ".xlsx", ".xls":
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, MsgExcelNotSupported)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedFileType, MsgUnsupportedFileType)
	}
}

func (s *importService) Preview(ctx context.Context, kind domain.EntityKind, fileName string, r io.Reader) (*domain.ImportPreview, error) {
	if err := CheckFileType(fileName); err != nil {
		s.LogDebug(ctx, "Rejected import file", slog.String("file_name", fileName))
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		s.LogError(ctx, err, "Failed to read import file", slog.String("file_name", fileName))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", apperrors.ErrValidation, s.maxBytes)
	}

	result, err := csvimport.ParseAndValidate(string(data), kind)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	preview := &domain.ImportPreview{FileName: fileName, Result: result}
	if s.archiver != nil {
		name := fmt.Sprintf("%s/%s/%s-%s", kind, s.Now().Format("2006/01/02"), uuid.NewString(), filepath.Base(fileName))
		uri, err := s.archiver.Archive(ctx, name, data)
		if err != nil {
			s.LogError(ctx, err, "Failed to archive import file", slog.String("file_name", fileName))
		} else {
			preview.ArchiveURI = uri
		}
	}

	s.LogInfo(ctx, "Import file validated",
		slog.String("kind", string(kind)),
		slog.String("file_name", fileName),
		slog.Int("valid", result.ValidCount),
		slog.Int("invalid", result.InvalidCount))
	return preview, nil
}

func (s *importService) Template(kind domain.EntityKind) domain.ImportTemplate {
	return domain.ImportTemplate{
		FileName: csvimport.TemplateFileName(kind),
		Content:  csvimport.TemplateBytes(kind),
	}
}

func (s *importService) Commit(ctx context.Context, kind domain.EntityKind, req dto.ImportCommitRequest, userID, authToken string) (*domain.BulkCreateResult, error) {
	var creates []func() error
	switch kind {
	case domain.EntityProduct:
		for _, p := range req.ToDomainProducts() {
			creates = append(creates, func() error { return s.catalog.CreateProduct(ctx, authToken, p) })
		}
	case domain.EntityPart:
		for _, p := range req.ToDomainParts() {
			creates = append(creates, func() error { return s.catalog.CreatePart(ctx, authToken, p) })
		}
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	if len(creates) == 0 {
		return nil, fmt.Errorf("%w: no %s to import", apperrors.ErrValidation, kind)
	}

	result := &domain.BulkCreateResult{}
	var createErr error
	for i, create := range creates {
		result.Attempted++
		if err := create(); err != nil {
			result.FailedRow = i + 1
			result.Error = err.Error()
			createErr = err
			s.LogError(ctx, err, "Import stopped at failing row",
				slog.String("kind", string(kind)),
				slog.Int("row", i+1),
				slog.Int("created", result.Created))
			break
		}
		result.Created++
	}

	batch := domain.ImportBatch{
		ImportBatchID: uuid.NewString(),
		Kind:          kind,
		FileName:      req.FileName,
		Submitted:     len(creates),
		Created:       result.Created,
		Status:        batchStatus(result.Created, len(creates)),
		ErrorMessage:  result.Error,
		CreatedAt:     s.Now(),
		CreatedBy:     userID,
	}
	if err := s.batches.SaveImportBatch(ctx, batch); err != nil {
		s.LogError(ctx, err, "Failed to record import batch", slog.String("import_batch_id", batch.ImportBatchID))
	} else {
		result.ImportBatchID = batch.ImportBatchID
	}

	if createErr != nil {
		return result, fmt.Errorf("row %d of %d: %w", result.FailedRow, len(creates), createErr)
	}
	s.LogInfo(ctx, "Import committed",
		slog.String("kind", string(kind)),
		slog.Int("created", result.Created))
	return result, nil
}

func (s *importService) ListBatches(ctx context.Context, limit int, nextToken string) ([]domain.ImportBatch, string, error) {
	limit = pagination.NormalizeLimit(limit)
	before, err := pagination.Cursor(nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	batches, err := s.batches.ListImportBatches(ctx, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to list import batches")
		return nil, "", fmt.Errorf("failed to list import batches: %w", err)
	}
	page, next := pagination.Page(batches, limit, func(b domain.ImportBatch) time.Time { return b.CreatedAt })
	return page, next, nil
}

func batchStatus(created, submitted int) domain.ImportBatchStatus {
	switch {
	case created == submitted:
		return domain.ImportBatchCompleted
	case created == 0:
		return domain.ImportBatchFailed
	}
	return domain.ImportBatchPartial
}
