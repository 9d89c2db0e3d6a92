package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadBatch records one processed CSV upload for auditing.
type UploadBatch struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Model         UploadModel `json:"model" db:"model"`
	FileName      string      `json:"fileName" db:"file_name"`
	StoredPath    string      `json:"storedPath" db:"stored_path"`
	TotalRows     int         `json:"totalRows" db:"total_rows"`
	ProcessedRows int         `json:"processedRows" db:"processed_rows"`
	FailedRows    int         `json:"failedRows" db:"failed_rows"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
}
