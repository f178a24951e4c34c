package models

import "time"

// ImportBatch is one row of import_batches.
type ImportBatch struct {
	ImportBatchID string    `db:"import_batch_id"`
	Kind          string    `db:"kind"`
	FileName      string    `db:"file_name"`
	Submitted     int       `db:"submitted"`
	Created       int       `db:"created"`
	Status        string    `db:"status"`
	ErrorMessage  string    `db:"error_message"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}
