package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Sentinel
// errors translate to specific statuses and error codes; anything
// unrecognized becomes a 500 without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownUploadModel):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeUnknownUploadModel, "Unknown upload model, expected departments, jobs or employees")
	case errors.Is(err, apperrors.ErrEmptyUpload):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeEmptyUpload, "Uploaded file contains no rows")
	case errors.Is(err, apperrors.ErrMalformedCSV):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeMalformedCSV, "Uploaded file is not parsable as CSV")
	case errors.Is(err, apperrors.ErrEmployeeBadReference):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Referenced department or job does not exist")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, validationMessage(err))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrJobNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Job not found")
	case errors.Is(err, apperrors.ErrEmployeeNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Employee not found")
	case errors.Is(err, apperrors.ErrUploadBatchNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Upload batch not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Department already exists")
	case errors.Is(err, apperrors.ErrJobAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Job already exists")
	case errors.Is(err, apperrors.ErrEmployeeAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Employee already exists")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrDepartmentInUse):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Department is referenced by employees")
	case errors.Is(err, apperrors.ErrJobInUse):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Job is referenced by employees")
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Resource conflict")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// respondError writes a standard error envelope
func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// validationMessage surfaces the wrapped detail of a validation error
// so callers learn which field was rejected
func validationMessage(err error) string {
	if err == nil {
		return "Validation failed"
	}
	return err.Error()
}
