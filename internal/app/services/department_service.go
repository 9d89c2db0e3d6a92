package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/helpers"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context, page, pageSize int) ([]models.Department, int64, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

// validateDepartment validates department data before database operations
func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrValidationFailed)
	}

	if department.ID <= 0 {
		return fmt.Errorf("%w: department ID must be positive", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: department name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateDepartment creates a new department
func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetDepartmentByID retrieves a department by ID
func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// GetAllDepartments retrieves departments with pagination
func (s *departmentServiceImpl) GetAllDepartments(ctx context.Context, page, pageSize int) ([]models.Department, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	departments, err := s.departmentRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving departments: %w", err)
	}

	total, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting departments: %w", err)
	}

	return departments, total, nil
}

// UpdateDepartment updates an existing department
func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	err := s.departmentRepo.Update(ctx, department)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	return nil
}

// DeleteDepartment deletes a department by ID
func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid department ID", apperrors.ErrValidationFailed)
	}

	err := s.departmentRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		if errors.Is(err, apperrors.ErrDepartmentInUse) {
			return apperrors.ErrDepartmentInUse
		}
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
