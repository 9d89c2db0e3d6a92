package dto

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"department"`
}

// CreateDepartmentRequest represents department creation data.
// IDs come from the source system, so they are part of the payload.
type CreateDepartmentRequest struct {
	ID   int64  `json:"id" binding:"required,gt=0"`
	Name string `json:"department" binding:"required"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name string `json:"department" binding:"required"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
