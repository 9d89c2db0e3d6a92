package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

type stubDepartmentService struct {
	createFn func(ctx context.Context, department *models.Department) error
	getFn    func(ctx context.Context, id int64) (*models.Department, error)
	getAllFn func(ctx context.Context, page, pageSize int) ([]models.Department, int64, error)
	updateFn func(ctx context.Context, department *models.Department) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubDepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, department)
}

func (s stubDepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if s.getFn == nil {
		return &models.Department{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubDepartmentService) GetAllDepartments(ctx context.Context, page, pageSize int) ([]models.Department, int64, error) {
	if s.getAllFn == nil {
		return nil, 0, nil
	}
	return s.getAllFn(ctx, page, pageSize)
}

func (s stubDepartmentService) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, department)
}

func (s stubDepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func newDepartmentRouter(service stubDepartmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewDepartmentController(service)
	router.POST("/departments", controller.CreateDepartment)
	router.GET("/departments", controller.GetAllDepartments)
	router.GET("/departments/:id", controller.GetDepartmentByID)
	router.PUT("/departments/:id", controller.UpdateDepartment)
	router.DELETE("/departments/:id", controller.DeleteDepartment)
	return router
}

func TestCreateDepartment(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		createFn: func(ctx context.Context, department *models.Department) error {
			if department.ID != 12 || department.Name != "Supply Chain" {
				t.Fatalf("unexpected department: %+v", department)
			}
			return nil
		},
	})

	body := bytes.NewBufferString(`{"id":12,"department":"Supply Chain"}`)
	req := httptest.NewRequest(http.MethodPost, "/departments", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	var response struct {
		Success bool                   `json:"success"`
		Data    dto.DepartmentResponse `json:"data"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if !response.Success {
		t.Fatal("expected success envelope")
	}
	if response.Data.ID != 12 || response.Data.Name != "Supply Chain" {
		t.Fatalf("unexpected response data: %+v", response.Data)
	}
}

func TestCreateDepartmentMissingName(t *testing.T) {
	called := false
	router := newDepartmentRouter(stubDepartmentService{
		createFn: func(ctx context.Context, department *models.Department) error {
			called = true
			return nil
		},
	})

	body := bytes.NewBufferString(`{"id":12}`)
	req := httptest.NewRequest(http.MethodPost, "/departments", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if called {
		t.Fatal("expected service not to be called for invalid payload")
	}
}

func TestCreateDepartmentAlreadyExists(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		createFn: func(ctx context.Context, department *models.Department) error {
			return apperrors.ErrDepartmentAlreadyExists
		},
	})

	body := bytes.NewBufferString(`{"id":12,"department":"Supply Chain"}`)
	req := httptest.NewRequest(http.MethodPost, "/departments", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, recorder.Code)
	}
}

func TestGetDepartmentByIDNotFound(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		getFn: func(ctx context.Context, id int64) (*models.Department, error) {
			return nil, apperrors.ErrDepartmentNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/departments/99", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if response.Error == nil || response.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("expected error code %s, got %+v", dto.ErrorCodeResourceNotFound, response.Error)
	}
}

func TestGetDepartmentByIDInvalidID(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{})

	req := httptest.NewRequest(http.MethodGet, "/departments/abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetAllDepartmentsPagination(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		getAllFn: func(ctx context.Context, page, pageSize int) ([]models.Department, int64, error) {
			if page != 2 || pageSize != 5 {
				t.Fatalf("unexpected pagination: page=%d pageSize=%d", page, pageSize)
			}
			return []models.Department{
				{ID: 6, Name: "Maintenance"},
				{ID: 7, Name: "Staff"},
			}, 12, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/departments?page=2&pageSize=5", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var response struct {
		Success    bool                     `json:"success"`
		Data       []dto.DepartmentResponse `json:"data"`
		Pagination *dto.PaginationInfo      `json:"pagination"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if len(response.Data) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(response.Data))
	}
	if response.Pagination == nil {
		t.Fatal("expected pagination metadata")
	}
	if response.Pagination.TotalItems != 12 || response.Pagination.CurrentPage != 2 {
		t.Fatalf("unexpected pagination metadata: %+v", response.Pagination)
	}
	if response.Pagination.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", response.Pagination.TotalPages)
	}
}

func TestUpdateDepartment(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		updateFn: func(ctx context.Context, department *models.Department) error {
			if department.ID != 6 || department.Name != "Logistics" {
				t.Fatalf("unexpected department: %+v", department)
			}
			return nil
		},
	})

	body := bytes.NewBufferString(`{"department":"Logistics"}`)
	req := httptest.NewRequest(http.MethodPut, "/departments/6", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
}

func TestDeleteDepartment(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 6 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/departments/6", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, recorder.Code)
	}
}

func TestDeleteDepartmentInUse(t *testing.T) {
	router := newDepartmentRouter(stubDepartmentService{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrDepartmentInUse
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/departments/6", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, recorder.Code)
	}
}
