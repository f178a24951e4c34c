package dto

import (
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductRow is a validated product row submitted for creation.
type ProductRow struct {
	Name     string          `json:"name" binding:"required"`
	Brand    string          `json:"brand" binding:"required"`
	Stock    int64           `json:"stock" binding:"gte=0"`
	Price    decimal.Decimal `json:"price" binding:"dgte0"`
	ImageURL string          `json:"image_url"`
}

// PartRow is a validated part row submitted for creation.
type PartRow struct {
	Name             string          `json:"name" binding:"required"`
	SKU              string          `json:"sku" binding:"required"`
	Stock            int64           `json:"stock" binding:"gte=0"`
	Price            decimal.Decimal `json:"price" binding:"dgte0"`
	CompatibleModels []string        `json:"compatible_models"`
}

// ImportCommitRequest carries the valid rows of a preview, in file order.
// Only the list matching the route kind is used.
type ImportCommitRequest struct {
	FileName string       `json:"fileName" binding:"max=255"`
	Products []ProductRow `json:"products" binding:"omitempty,dive"`
	Parts    []PartRow    `json:"parts" binding:"omitempty,dive"`
}

// ImportRowResponse is the per-row outcome shown in the preview table.
type ImportRowResponse struct {
	Row     int               `json:"row"`
	IsValid bool              `json:"isValid"`
	Errors  []string          `json:"errors"`
	Fields  map[string]string `json:"fields"`
	Data    any               `json:"data,omitempty"`
}

// ImportPreviewResponse defines the structure returned by an import preview.
type ImportPreviewResponse struct {
	Kind         domain.EntityKind   `json:"kind"`
	FileName     string              `json:"fileName"`
	ValidCount   int                 `json:"validCount"`
	InvalidCount int                 `json:"invalidCount"`
	Headers      []string            `json:"headers"`
	Rows         []ImportRowResponse `json:"rows"`
	Summary      []string            `json:"summary"`
	ArchivedAt   string              `json:"archivedAt,omitempty"`
}

// ImportBatchResponse is one import audit record.
type ImportBatchResponse struct {
	ImportBatchID string                   `json:"importBatchID"`
	Kind          domain.EntityKind        `json:"kind"`
	FileName      string                   `json:"fileName"`
	Submitted     int                      `json:"submitted"`
	Created       int                      `json:"created"`
	Status        domain.ImportBatchStatus `json:"status"`
	ErrorMessage  string                   `json:"errorMessage,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
}

// ListImportBatchesResponse is a page of import batches.
type ListImportBatchesResponse struct {
	Batches   []ImportBatchResponse `json:"batches"`
	NextToken string                `json:"nextToken,omitempty"`
}

// ToDomainProducts converts the submitted rows, keeping their order.
func (r ImportCommitRequest) ToDomainProducts() []domain.Product {
	out := make([]domain.Product, len(r.Products))
	for i, p := range r.Products {
		out[i] = domain.Product{Name: p.Name, Brand: p.Brand, Stock: p.Stock, Price: p.Price, ImageURL: p.ImageURL}
	}
	return out
}

// ToDomainParts converts the submitted rows, keeping their order.
func (r ImportCommitRequest) ToDomainParts() []domain.Part {
	out := make([]domain.Part, len(r.Parts))
	for i, p := range r.Parts {
		out[i] = domain.Part{Name: p.Name, SKU: p.SKU, Stock: p.Stock, Price: p.Price, CompatibleModels: p.CompatibleModels}
	}
	return out
}

// ToImportPreviewResponse converts a preview together with its error summary lines.
func ToImportPreviewResponse(p *domain.ImportPreview, summary []string) ImportPreviewResponse {
	rows := make([]ImportRowResponse, len(p.Result.Rows))
	for i, row := range p.Result.Rows {
		rows[i] = ImportRowResponse{
			Row:     row.RowNumber,
			IsValid: row.IsValid,
			Errors:  row.Errors,
			Fields:  row.RawFields,
		}
		if row.IsValid {
			rows[i].Data = row.Data
		}
	}
	return ImportPreviewResponse{
		Kind:         p.Result.Kind,
		FileName:     p.FileName,
		ValidCount:   p.Result.ValidCount,
		InvalidCount: p.Result.InvalidCount,
		Headers:      p.Result.HeaderKeys,
		Rows:         rows,
		Summary:      summary,
		ArchivedAt:   p.ArchiveURI,
	}
}

// ToListImportBatchesResponse converts a page of batches.
func ToListImportBatchesResponse(batches []domain.ImportBatch, nextToken string) ListImportBatchesResponse {
	resp := ListImportBatchesResponse{
		Batches:   make([]ImportBatchResponse, len(batches)),
		NextToken: nextToken,
	}
	for i, b := range batches {
		resp.Batches[i] = ImportBatchResponse(b)
	}
	return resp
}

// NewImportCommitRequest collects the valid rows of result in file order.
func NewImportCommitRequest(fileName string, result domain.ParseResult) ImportCommitRequest {
	req := ImportCommitRequest{FileName: fileName}
	for _, data := range result.ValidData() {
		switch v := data.(type) {
		case domain.Product:
			req.Products = append(req.Products, ProductRow{Name: v.Name, Brand: v.Brand, Stock: v.Stock, Price: v.Price, ImageURL: v.ImageURL})
		case domain.Part:
			req.Parts = append(req.Parts, PartRow{Name: v.Name, SKU: v.SKU, Stock: v.Stock, Price: v.Price, CompatibleModels: v.CompatibleModels})
		}
	}
	return req
}
