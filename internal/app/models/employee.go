package models

import "time"

// Employee represents a hired employee. Name, hire datetime and both
// references are optional in the source data and stay NULL when absent.
type Employee struct {
	ID           int64      `json:"id"`
	Name         *string    `json:"name,omitempty"`
	HireDatetime *time.Time `json:"datetime,omitempty"`
	DepartmentID *int64     `json:"departmentId,omitempty"`
	JobID        *int64     `json:"jobId,omitempty"`
}
