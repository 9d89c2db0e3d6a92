package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
	"github.com/JuanS3/globant-data-eng/internal/pkg/helpers"
)

// UploadController handles CSV ingestion and upload audit operations
type UploadController struct {
	uploadService  services.UploadService
	maxUploadBytes int64
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService, maxUploadBytes int64) *UploadController {
	return &UploadController{
		uploadService:  uploadService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadCSV ingests one CSV file for the selected model
// @Summary Upload a CSV batch
// @Description Parses a headerless CSV file for the given model and upserts its rows. Valid rows are written in one transaction; invalid rows are reported individually with their row number and reason.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param model path string true "Target model" Enums(departments, jobs, employees)
// @Param file formData file true "CSV file without header row"
// @Success 200 {object} dto.UploadResultResponse "Batch processed, possibly with row-level failures"
// @Failure 400 {object} dto.ErrorResponse "Unknown model, missing file, or unparsable CSV"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 413 {object} dto.ErrorResponse "File exceeds the upload size limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload/csv/{model} [post]
func (c *UploadController) UploadCSV(ctx *gin.Context) {
	model := ctx.Param("model")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or missing file")
		errorDetail = errorDetail.WithDetails("Request must contain a multipart field named file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if c.maxUploadBytes > 0 && fileHeader.Size > c.maxUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "File too large")
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Unable to read uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Unable to read uploaded file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.uploadService.IngestCSV(ctx, model, fileHeader.Filename, data)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetAllBatches lists upload audit records
// @Summary List upload batches
// @Description Retrieves a paginated list of past CSV uploads, newest first
// @Tags uploads
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.UploadBatchListResponse} "Upload batches retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads/batches [get]
func (c *UploadController) GetAllBatches(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	response, err := c.uploadService.GetAllBatches(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetBatchByID retrieves one upload audit record
// @Summary Get upload batch by ID
// @Description Retrieves one upload audit record by its batch identifier
// @Tags uploads
// @Accept json
// @Produce json
// @Param id path string true "Batch ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=dto.UploadBatchResponse} "Upload batch retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid batch ID"
// @Failure 404 {object} dto.ErrorResponse "Upload batch not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads/batches/{id} [get]
func (c *UploadController) GetBatchByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid batch ID")
		errorDetail = errorDetail.WithDetails("Batch ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	batch, err := c.uploadService.GetBatchByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(batch))
}
