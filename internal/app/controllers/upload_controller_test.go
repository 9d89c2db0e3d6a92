package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

type stubUploadService struct {
	ingestCSVFn     func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error)
	getBatchByIDFn  func(ctx context.Context, id uuid.UUID) (*dto.UploadBatchResponse, error)
	getAllBatchesFn func(ctx context.Context, page, pageSize int) (*dto.UploadBatchListResponse, error)
}

func (s stubUploadService) IngestCSV(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
	if s.ingestCSVFn == nil {
		return &dto.UploadResultResponse{}, nil
	}
	return s.ingestCSVFn(ctx, modelName, fileName, data)
}

func (s stubUploadService) GetBatchByID(ctx context.Context, id uuid.UUID) (*dto.UploadBatchResponse, error) {
	if s.getBatchByIDFn == nil {
		return &dto.UploadBatchResponse{}, nil
	}
	return s.getBatchByIDFn(ctx, id)
}

func (s stubUploadService) GetAllBatches(ctx context.Context, page, pageSize int) (*dto.UploadBatchListResponse, error) {
	if s.getAllBatchesFn == nil {
		return &dto.UploadBatchListResponse{}, nil
	}
	return s.getAllBatchesFn(ctx, page, pageSize)
}

func newUploadRouter(service stubUploadService, maxUploadBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewUploadController(service, maxUploadBytes)
	router.POST("/upload/csv/:model", controller.UploadCSV)
	router.GET("/uploads/batches/:id", controller.GetBatchByID)
	return router
}

func csvUploadRequest(t *testing.T, target, fileName, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadCSVSuccess(t *testing.T) {
	batchID := uuid.New().String()
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			if modelName != "departments" {
				t.Fatalf("unexpected model: %s", modelName)
			}
			if fileName != "departments.csv" {
				t.Fatalf("unexpected file name: %s", fileName)
			}
			if string(data) != "1,Supply Chain\n2,Maintenance\n" {
				t.Fatalf("unexpected file content: %q", string(data))
			}
			return &dto.UploadResultResponse{
				BatchID:   batchID,
				Model:     "departments",
				FileName:  fileName,
				TotalRows: 2,
				Processed: 2,
				Failed:    0,
				Failures:  []dto.RowFailure{},
			}, nil
		},
	}, 0)

	req := csvUploadRequest(t, "/upload/csv/departments", "departments.csv", "1,Supply Chain\n2,Maintenance\n")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var result dto.UploadResultResponse
	if err := json.NewDecoder(recorder.Body).Decode(&result); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if result.Processed != 2 || result.Failed != 0 {
		t.Fatalf("unexpected counts: processed=%d failed=%d", result.Processed, result.Failed)
	}
	if result.BatchID != batchID {
		t.Fatalf("expected batch id %s, got %s", batchID, result.BatchID)
	}
}

func TestUploadCSVEmptyFailuresMarshalsAsArray(t *testing.T) {
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			return &dto.UploadResultResponse{
				Model:     modelName,
				FileName:  fileName,
				TotalRows: 1,
				Processed: 1,
				Failures:  []dto.RowFailure{},
			}, nil
		},
	}, 0)

	req := csvUploadRequest(t, "/upload/csv/jobs", "jobs.csv", "1,Recruiter\n")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), `"failures":[]`) {
		t.Fatalf("expected empty failures array in body, got %s", recorder.Body.String())
	}
}

func TestUploadCSVRowFailuresReported(t *testing.T) {
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			return &dto.UploadResultResponse{
				Model:     modelName,
				FileName:  fileName,
				TotalRows: 3,
				Processed: 2,
				Failed:    1,
				Failures: []dto.RowFailure{
					{Row: 2, Reason: "invalid id \"abc\""},
				},
			}, nil
		},
	}, 0)

	req := csvUploadRequest(t, "/upload/csv/employees", "hired_employees.csv", "irrelevant")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var result dto.UploadResultResponse
	if err := json.NewDecoder(recorder.Body).Decode(&result); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}
	if result.Failures[0].Row != 2 {
		t.Fatalf("expected failure on row 2, got %d", result.Failures[0].Row)
	}
}

func TestUploadCSVUnknownModel(t *testing.T) {
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownUploadModel, modelName)
		},
	}, 0)

	req := csvUploadRequest(t, "/upload/csv/invoices", "invoices.csv", "1,foo\n")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if response.Error == nil || response.Error.Code != dto.ErrorCodeUnknownUploadModel {
		t.Fatalf("expected error code %s, got %+v", dto.ErrorCodeUnknownUploadModel, response.Error)
	}
}

func TestUploadCSVEmptyUpload(t *testing.T) {
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			return nil, apperrors.ErrEmptyUpload
		},
	}, 0)

	req := csvUploadRequest(t, "/upload/csv/departments", "empty.csv", "")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestUploadCSVMissingFile(t *testing.T) {
	router := newUploadRouter(stubUploadService{}, 0)

	req := httptest.NewRequest(http.MethodPost, "/upload/csv/departments", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestUploadCSVFileTooLarge(t *testing.T) {
	called := false
	router := newUploadRouter(stubUploadService{
		ingestCSVFn: func(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
			called = true
			return &dto.UploadResultResponse{}, nil
		},
	}, 8)

	req := csvUploadRequest(t, "/upload/csv/departments", "big.csv", "1,Supply Chain\n2,Maintenance\n")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status %d, got %d", http.StatusRequestEntityTooLarge, recorder.Code)
	}
	if called {
		t.Fatal("expected ingest not to be called for oversized file")
	}
}

func TestGetBatchByIDInvalidUUID(t *testing.T) {
	router := newUploadRouter(stubUploadService{}, 0)

	req := httptest.NewRequest(http.MethodGet, "/uploads/batches/not-a-uuid", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetBatchByIDNotFound(t *testing.T) {
	router := newUploadRouter(stubUploadService{
		getBatchByIDFn: func(ctx context.Context, id uuid.UUID) (*dto.UploadBatchResponse, error) {
			return nil, apperrors.ErrUploadBatchNotFound
		},
	}, 0)

	req := httptest.NewRequest(http.MethodGet, "/uploads/batches/"+uuid.New().String(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
}
