package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

type stubReportService struct {
	hiresByQuarterFn            func(ctx context.Context, year int) ([]models.QuarterHires, error)
	departmentsAboveMeanHiresFn func(ctx context.Context, year int) ([]models.DepartmentHires, error)
}

func (s stubReportService) HiresByQuarter(ctx context.Context, year int) ([]models.QuarterHires, error) {
	if s.hiresByQuarterFn == nil {
		return nil, nil
	}
	return s.hiresByQuarterFn(ctx, year)
}

func (s stubReportService) DepartmentsAboveMeanHires(ctx context.Context, year int) ([]models.DepartmentHires, error) {
	if s.departmentsAboveMeanHiresFn == nil {
		return nil, nil
	}
	return s.departmentsAboveMeanHiresFn(ctx, year)
}

func newReportRouter(service stubReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewReportController(service)
	router.GET("/reports/hires/departments/q/:year", controller.GetHiresByQuarter)
	router.GET("/reports/hires/departments/mean/:year", controller.GetDepartmentsAboveMean)
	return router
}

func TestGetHiresByQuarter(t *testing.T) {
	router := newReportRouter(stubReportService{
		hiresByQuarterFn: func(ctx context.Context, year int) ([]models.QuarterHires, error) {
			if year != 2021 {
				t.Fatalf("unexpected year: %d", year)
			}
			return []models.QuarterHires{
				{Department: "Maintenance", Job: "Analyst", Q1: 1, Q2: 0, Q3: 2, Q4: 0},
				{Department: "Supply Chain", Job: "Manager", Q1: 0, Q2: 1, Q3: 0, Q4: 3},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/hires/departments/q/2021", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var rows []dto.HiresByQuarterResponse
	if err := json.NewDecoder(recorder.Body).Decode(&rows); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Department != "Maintenance" || rows[0].Job != "Analyst" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].Q3 != 2 {
		t.Fatalf("expected q3=2, got %d", rows[0].Q3)
	}
	if rows[1].Q4 != 3 {
		t.Fatalf("expected q4=3, got %d", rows[1].Q4)
	}
}

func TestGetHiresByQuarterEmptyResult(t *testing.T) {
	router := newReportRouter(stubReportService{
		hiresByQuarterFn: func(ctx context.Context, year int) ([]models.QuarterHires, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/hires/departments/q/1999", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if recorder.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %s", recorder.Body.String())
	}
}

func TestGetHiresByQuarterInvalidYear(t *testing.T) {
	router := newReportRouter(stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/reports/hires/departments/q/twenty21", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestGetDepartmentsAboveMean(t *testing.T) {
	router := newReportRouter(stubReportService{
		departmentsAboveMeanHiresFn: func(ctx context.Context, year int) ([]models.DepartmentHires, error) {
			if year != 2021 {
				t.Fatalf("unexpected year: %d", year)
			}
			return []models.DepartmentHires{
				{ID: 1, Department: "Supply Chain", Hired: 45},
				{ID: 2, Department: "Maintenance", Hired: 40},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/hires/departments/mean/2021", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	var rows []dto.DepartmentHiresResponse
	if err := json.NewDecoder(recorder.Body).Decode(&rows); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Hired < rows[1].Hired {
		t.Fatalf("expected rows ordered by hires descending, got %+v", rows)
	}
	if rows[0].ID != 1 || rows[0].Department != "Supply Chain" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestGetDepartmentsAboveMeanYearOutOfRange(t *testing.T) {
	router := newReportRouter(stubReportService{
		departmentsAboveMeanHiresFn: func(ctx context.Context, year int) ([]models.DepartmentHires, error) {
			return nil, fmt.Errorf("%w: year must be between 1 and 9999", apperrors.ErrValidationFailed)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/hires/departments/mean/0", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	if response.Error == nil || response.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected error code %s, got %+v", dto.ErrorCodeValidationFailed, response.Error)
	}
}
