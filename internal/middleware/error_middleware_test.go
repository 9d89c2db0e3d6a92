package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"unknown upload model", apperrors.ErrUnknownUploadModel, http.StatusBadRequest, dto.ErrorCodeUnknownUploadModel},
		{"empty upload", apperrors.ErrEmptyUpload, http.StatusBadRequest, dto.ErrorCodeEmptyUpload},
		{"malformed csv", apperrors.ErrMalformedCSV, http.StatusBadRequest, dto.ErrorCodeMalformedCSV},
		{"bad employee reference", apperrors.ErrEmployeeBadReference, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"department not found", apperrors.ErrDepartmentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"upload batch not found", apperrors.ErrUploadBatchNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"job already exists", apperrors.ErrJobAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"department in use", apperrors.ErrDepartmentInUse, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"unrecognized error", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, recorder.Code)
			}

			var response dto.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if response.Success {
				t.Error("expected success false")
			}
			if response.Error == nil || response.Error.Code != tt.wantCode {
				t.Errorf("expected error code %s, got %+v", tt.wantCode, response.Error)
			}
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	err := fmt.Errorf("%w: year must be between 1 and 9999", apperrors.ErrValidationFailed)
	HandleAPIError(c, err)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", recorder.Code)
	}

	var response dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response.Error == nil || response.Error.Message != "validation failed: year must be between 1 and 9999" {
		t.Errorf("expected wrapped detail in message, got %+v", response.Error)
	}
}
