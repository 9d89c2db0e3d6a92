package dto

import (
	"time"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
)

// EmployeeResponse represents basic employee information
type EmployeeResponse struct {
	ID           int64   `json:"id"`
	Name         *string `json:"name"`
	Datetime     *string `json:"datetime"`
	DepartmentID *int64  `json:"departmentId"`
	JobID        *int64  `json:"jobId"`
}

// CreateEmployeeRequest represents employee creation data.
// IDs come from the source system, so they are part of the payload.
// Datetime is an RFC3339 timestamp; optional fields may be omitted or null.
type CreateEmployeeRequest struct {
	ID           int64   `json:"id" binding:"required,gt=0"`
	Name         *string `json:"name"`
	Datetime     *string `json:"datetime"`
	DepartmentID *int64  `json:"departmentId"`
	JobID        *int64  `json:"jobId"`
}

// UpdateEmployeeRequest represents employee update data
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Datetime     *string `json:"datetime"`
	DepartmentID *int64  `json:"departmentId"`
	JobID        *int64  `json:"jobId"`
}

// EmployeeFilterRequest represents employee listing filters
type EmployeeFilterRequest struct {
	DepartmentID *int64 `form:"departmentId,omitempty"`
	JobID        *int64 `form:"jobId,omitempty"`
	Year         *int   `form:"year,omitempty"`
	Page         int    `form:"page,default=1" binding:"min=1"`
	PageSize     int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// EmployeeListResponse represents a list of employees
type EmployeeListResponse struct {
	Employees      []EmployeeResponse `json:"employees"`
	PaginationInfo PaginationInfo     `json:"pagination"`
}

// FromEmployee converts an Employee model to an EmployeeResponse
func FromEmployee(employee *models.Employee) EmployeeResponse {
	if employee == nil {
		return EmployeeResponse{}
	}

	resp := EmployeeResponse{
		ID:           employee.ID,
		Name:         employee.Name,
		DepartmentID: employee.DepartmentID,
		JobID:        employee.JobID,
	}

	if employee.HireDatetime != nil {
		formatted := employee.HireDatetime.UTC().Format(time.RFC3339)
		resp.Datetime = &formatted
	}

	return resp
}
