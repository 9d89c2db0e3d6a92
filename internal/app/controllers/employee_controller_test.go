package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

type stubEmployeeService struct {
	createFn func(ctx context.Context, employee *models.Employee) error
	getFn    func(ctx context.Context, id int64) (*models.Employee, error)
	getAllFn func(ctx context.Context, filter *dto.EmployeeFilterRequest) (*dto.EmployeeListResponse, error)
	updateFn func(ctx context.Context, employee *models.Employee) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubEmployeeService) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, employee)
}

func (s stubEmployeeService) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if s.getFn == nil {
		return &models.Employee{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubEmployeeService) GetAllEmployees(ctx context.Context, filter *dto.EmployeeFilterRequest) (*dto.EmployeeListResponse, error) {
	if s.getAllFn == nil {
		return &dto.EmployeeListResponse{}, nil
	}
	return s.getAllFn(ctx, filter)
}

func (s stubEmployeeService) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, employee)
}

func (s stubEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func newEmployeeRouter(service stubEmployeeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewEmployeeController(service)
	router.POST("/employees", controller.CreateEmployee)
	router.GET("/employees", controller.GetAllEmployees)
	router.GET("/employees/:id", controller.GetEmployeeByID)
	return router
}

func TestCreateEmployee(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, employee *models.Employee) error {
			if employee.ID != 4535 {
				t.Fatalf("unexpected id: %d", employee.ID)
			}
			if employee.Name == nil || *employee.Name != "Marcelo Gonzalez" {
				t.Fatalf("unexpected name: %v", employee.Name)
			}
			if employee.HireDatetime == nil {
				t.Fatal("expected hire datetime to be parsed")
			}
			want := time.Date(2021, 7, 27, 16, 2, 8, 0, time.UTC)
			if !employee.HireDatetime.Equal(want) {
				t.Fatalf("unexpected hire datetime: %v", employee.HireDatetime)
			}
			return nil
		},
	})

	body := bytes.NewBufferString(`{"id":4535,"name":"Marcelo Gonzalez","datetime":"2021-07-27T16:02:08Z","departmentId":1,"jobId":2}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	var response struct {
		Data dto.EmployeeResponse `json:"data"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if response.Data.Datetime == nil || *response.Data.Datetime != "2021-07-27T16:02:08Z" {
		t.Fatalf("unexpected datetime in response: %v", response.Data.Datetime)
	}
}

func TestCreateEmployeeOptionalFieldsOmitted(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, employee *models.Employee) error {
			if employee.Name != nil || employee.HireDatetime != nil || employee.DepartmentID != nil || employee.JobID != nil {
				t.Fatalf("expected optional fields to stay nil: %+v", employee)
			}
			return nil
		},
	})

	body := bytes.NewBufferString(`{"id":4600}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}
}

func TestCreateEmployeeInvalidDatetime(t *testing.T) {
	called := false
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, employee *models.Employee) error {
			called = true
			return nil
		},
	})

	body := bytes.NewBufferString(`{"id":4535,"datetime":"27/07/2021"}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	if called {
		t.Fatal("expected service not to be called for invalid timestamp")
	}
}

func TestCreateEmployeeBadReference(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		createFn: func(ctx context.Context, employee *models.Employee) error {
			return apperrors.ErrEmployeeBadReference
		},
	})

	body := bytes.NewBufferString(`{"id":4535,"departmentId":999}`)
	req := httptest.NewRequest(http.MethodPost, "/employees", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetAllEmployeesFilters(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		getAllFn: func(ctx context.Context, filter *dto.EmployeeFilterRequest) (*dto.EmployeeListResponse, error) {
			if filter.DepartmentID == nil || *filter.DepartmentID != 1 {
				t.Fatalf("unexpected department filter: %v", filter.DepartmentID)
			}
			if filter.Year == nil || *filter.Year != 2021 {
				t.Fatalf("unexpected year filter: %v", filter.Year)
			}
			if filter.Page != 1 || filter.PageSize != 10 {
				t.Fatalf("unexpected pagination defaults: page=%d pageSize=%d", filter.Page, filter.PageSize)
			}
			name := "Marcelo Gonzalez"
			return &dto.EmployeeListResponse{
				Employees: []dto.EmployeeResponse{{ID: 4535, Name: &name}},
				PaginationInfo: dto.PaginationInfo{
					CurrentPage: 1,
					TotalPages:  1,
					PageSize:    10,
					TotalItems:  1,
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/employees?departmentId=1&year=2021", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var response struct {
		Data dto.EmployeeListResponse `json:"data"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if len(response.Data.Employees) != 1 || response.Data.Employees[0].ID != 4535 {
		t.Fatalf("unexpected employees: %+v", response.Data.Employees)
	}
}

func TestGetEmployeeByIDNotFound(t *testing.T) {
	router := newEmployeeRouter(stubEmployeeService{
		getFn: func(ctx context.Context, id int64) (*models.Employee, error) {
			return nil, apperrors.ErrEmployeeNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/employees/404", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}
}
