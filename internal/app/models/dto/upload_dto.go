package dto

import (
	"time"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
)

// RowFailure reports one rejected CSV row. Row indexes are 1-based.
type RowFailure struct {
	Row    int    `json:"row" example:"17"`
	Reason string `json:"reason" example:"department_id 42 does not exist"`
}

// UploadResultResponse summarizes a processed CSV upload
type UploadResultResponse struct {
	BatchID   string       `json:"batchId" example:"7a9c2f9e-58a1-4c53-b9a7-2d1c5f3f8a10"`
	Model     string       `json:"model" example:"employees"`
	FileName  string       `json:"fileName" example:"hired_employees.csv"`
	TotalRows int          `json:"totalRows" example:"1000"`
	Processed int          `json:"processed" example:"998"`
	Failed    int          `json:"failed" example:"2"`
	Failures  []RowFailure `json:"failures"`
}

// UploadBatchResponse represents one audit record of a past upload
type UploadBatchResponse struct {
	ID            string    `json:"id"`
	Model         string    `json:"model"`
	FileName      string    `json:"fileName"`
	TotalRows     int       `json:"totalRows"`
	ProcessedRows int       `json:"processedRows"`
	FailedRows    int       `json:"failedRows"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UploadBatchListResponse represents a page of upload audit records
type UploadBatchListResponse struct {
	Batches        []UploadBatchResponse `json:"batches"`
	PaginationInfo PaginationInfo        `json:"pagination"`
}

// FromUploadBatch converts an UploadBatch model to an UploadBatchResponse
func FromUploadBatch(batch *models.UploadBatch) UploadBatchResponse {
	if batch == nil {
		return UploadBatchResponse{}
	}

	return UploadBatchResponse{
		ID:            batch.ID.String(),
		Model:         batch.Model.String(),
		FileName:      batch.FileName,
		TotalRows:     batch.TotalRows,
		ProcessedRows: batch.ProcessedRows,
		FailedRows:    batch.FailedRows,
		CreatedAt:     batch.CreatedAt,
	}
}
