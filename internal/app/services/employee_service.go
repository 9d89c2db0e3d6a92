package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

// EmployeeService defines the interface for employee-related operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error)
	GetAllEmployees(ctx context.Context, filter *dto.EmployeeFilterRequest) (*dto.EmployeeListResponse, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}

// employeeServiceImpl implements the EmployeeService interface
type employeeServiceImpl struct {
	employeeRepo *repositories.EmployeeRepository
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo *repositories.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// validateEmployee validates employee data before database operations.
// Name, hire timestamp and references are optional; only the ID is
// mandatory because it comes from the source system.
func (s *employeeServiceImpl) validateEmployee(employee *models.Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee is nil", apperrors.ErrValidationFailed)
	}

	if employee.ID <= 0 {
		return fmt.Errorf("%w: employee ID must be positive", apperrors.ErrValidationFailed)
	}

	if employee.DepartmentID != nil && *employee.DepartmentID <= 0 {
		return fmt.Errorf("%w: department ID must be positive", apperrors.ErrValidationFailed)
	}

	if employee.JobID != nil && *employee.JobID <= 0 {
		return fmt.Errorf("%w: job ID must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateEmployee creates a new employee
func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := s.validateEmployee(employee); err != nil {
		return err
	}

	err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeAlreadyExists) {
			return apperrors.ErrEmployeeAlreadyExists
		}
		if errors.Is(err, apperrors.ErrEmployeeBadReference) {
			return apperrors.ErrEmployeeBadReference
		}
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

// GetEmployeeByID retrieves an employee by ID
func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, id int64) (*models.Employee, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}

// GetAllEmployees retrieves employees with filtering and pagination
func (s *employeeServiceImpl) GetAllEmployees(ctx context.Context, filter *dto.EmployeeFilterRequest) (*dto.EmployeeListResponse, error) {
	employees, total, err := s.employeeRepo.GetAll(ctx, filter.DepartmentID, filter.JobID, filter.Year, filter.Page, filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("error getting employees: %w", err)
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		employeeResponses = append(employeeResponses, dto.FromEmployee(&employees[i]))
	}

	totalPages := (total + int64(filter.PageSize) - 1) / int64(filter.PageSize)
	return &dto.EmployeeListResponse{
		Employees: employeeResponses,
		PaginationInfo: dto.PaginationInfo{
			CurrentPage: filter.Page,
			PageSize:    filter.PageSize,
			TotalItems:  total,
			TotalPages:  int(totalPages),
		},
	}, nil
}

// UpdateEmployee updates an existing employee
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := s.validateEmployee(employee); err != nil {
		return err
	}

	err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		if errors.Is(err, apperrors.ErrEmployeeBadReference) {
			return apperrors.ErrEmployeeBadReference
		}
		return fmt.Errorf("error updating employee: %w", err)
	}
	return nil
}

// DeleteEmployee deletes an employee by ID
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid employee ID", apperrors.ErrValidationFailed)
	}

	err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("error deleting employee: %w", err)
	}
	return nil
}
