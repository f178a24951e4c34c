package domain

import "time"

// RawRow maps a normalized header key to the trimmed field value of one data line.
type RawRow map[string]string

// ImportRow is the validation outcome of one data line. Data holds a Product or a Part.
type ImportRow struct {
	RowNumber int      `json:"row" yaml:"row"`
	RawFields RawRow   `json:"rawFields" yaml:"raw_fields"`
	Errors    []string `json:"errors" yaml:"errors"`
	IsValid   bool     `json:"isValid" yaml:"is_valid"`
	Data      any      `json:"data" yaml:"data"`
}

// ParseResult aggregates the rows of a single parse-and-validate pass.
type ParseResult struct {
	Kind         EntityKind  `json:"kind" yaml:"kind"`
	Rows         []ImportRow `json:"rows" yaml:"rows"`
	ValidCount   int         `json:"validCount" yaml:"valid_count"`
	InvalidCount int         `json:"invalidCount" yaml:"invalid_count"`
	HeaderKeys   []string    `json:"headers" yaml:"headers"`
}

// ValidData returns the coerced records of the valid rows, in input order.
func (r ParseResult) ValidData() []any {
	out := make([]any, 0, r.ValidCount)
	for _, row := range r.Rows {
		if row.IsValid {
			out = append(out, row.Data)
		}
	}
	return out
}

// BulkCreateResult reports how far a sequential bulk creation got.
// FailedRow is the 1-based position in the submitted list, zero when every row was created.
type BulkCreateResult struct {
	ImportBatchID string `json:"importBatchID,omitempty"`
	Attempted     int    `json:"attempted"`
	Created       int    `json:"created"`
	FailedRow     int    `json:"failedRow,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ImportBatchStatus is the final state of a bulk import.
type ImportBatchStatus string

const (
	ImportBatchCompleted ImportBatchStatus = "completed"
	ImportBatchPartial   ImportBatchStatus = "partial"
	ImportBatchFailed    ImportBatchStatus = "failed"
)

// ImportBatch is the audit record of one committed import.
type ImportBatch struct {
	ImportBatchID string            `json:"importBatchID"`
	Kind          EntityKind        `json:"kind"`
	FileName      string            `json:"fileName"`
	Submitted     int               `json:"submitted"`
	Created       int               `json:"created"`
	Status        ImportBatchStatus `json:"status"`
	ErrorMessage  string            `json:"errorMessage,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
}

// ImportPreview is the outcome of validating an uploaded file. ArchiveURI is set when a copy was kept.
type ImportPreview struct {
	FileName   string
	Result     ParseResult
	ArchiveURI string
}

// ImportTemplate is a downloadable example document.
type ImportTemplate struct {
	FileName string
	Content  []byte
}
