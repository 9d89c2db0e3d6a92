package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository  *DepartmentRepository
	JobRepository         *JobRepository
	EmployeeRepository    *EmployeeRepository
	UploadBatchRepository *UploadBatchRepository
	ReportRepository      *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository:  NewDepartmentRepository(db),
		JobRepository:         NewJobRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
		UploadBatchRepository: NewUploadBatchRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
