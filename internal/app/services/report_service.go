package services

import (
	"context"
	"fmt"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

// ReportService defines the interface for hiring report operations
type ReportService interface {
	HiresByQuarter(ctx context.Context, year int) ([]models.QuarterHires, error)
	DepartmentsAboveMeanHires(ctx context.Context, year int) ([]models.DepartmentHires, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportRepo *repositories.ReportRepository
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo *repositories.ReportRepository) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
	}
}

// validateYear bounds the report year to what a hire timestamp can hold
func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year must be between 1 and 9999", apperrors.ErrValidationFailed)
	}
	return nil
}

// HiresByQuarter returns the number of employees hired per department,
// job and calendar quarter for the given year
func (s *reportServiceImpl) HiresByQuarter(ctx context.Context, year int) ([]models.QuarterHires, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	hires, err := s.reportRepo.HiresByQuarter(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("error building quarterly hires report: %w", err)
	}
	return hires, nil
}

// DepartmentsAboveMeanHires returns departments whose hire count for the
// given year strictly exceeds the mean across departments that hired
func (s *reportServiceImpl) DepartmentsAboveMeanHires(ctx context.Context, year int) ([]models.DepartmentHires, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	hires, err := s.reportRepo.DepartmentsAboveMeanHires(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("error building above-mean hires report: %w", err)
	}
	return hires, nil
}
