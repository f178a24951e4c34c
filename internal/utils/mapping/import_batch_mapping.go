package mapping

import (
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/models"
)

// ToModelImportBatch converts a domain ImportBatch to its row.
func ToModelImportBatch(d domain.ImportBatch) models.ImportBatch {
	return models.ImportBatch{
		ImportBatchID: d.ImportBatchID,
		Kind:          string(d.Kind),
		FileName:      d.FileName,
		Submitted:     d.Submitted,
		Created:       d.Created,
		Status:        string(d.Status),
		ErrorMessage:  d.ErrorMessage,
		CreatedAt:     d.CreatedAt.UTC(),
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainImportBatches converts batch rows, keeping their order.
func ToDomainImportBatches(rows []models.ImportBatch) []domain.ImportBatch {
	out := make([]domain.ImportBatch, len(rows))
	for i, m := range rows {
		out[i] = domain.ImportBatch{
			ImportBatchID: m.ImportBatchID,
			Kind:          domain.EntityKind(m.Kind),
			FileName:      m.FileName,
			Submitted:     m.Submitted,
			Created:       m.Created,
			Status:        domain.ImportBatchStatus(m.Status),
			ErrorMessage:  m.ErrorMessage,
			CreatedAt:     m.CreatedAt.UTC(),
			CreatedBy:     m.CreatedBy,
		}
	}
	return out
}
