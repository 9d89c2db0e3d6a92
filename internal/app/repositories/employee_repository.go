package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/dberrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new employee with its source-assigned id
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Insert("employees").
		Columns("id", "name", "hire_datetime", "department_id", "job_id").
		Values(employee.ID, employee.Name, employee.HireDatetime, employee.DepartmentID, employee.JobID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create employee SQL")
		return fmt.Errorf("failed to build create employee query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmployeeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEmployeeBadReference
		}
		logger.Error().Err(err).Int64("employeeID", employee.ID).Msg("Error executing create employee query")
		return fmt.Errorf("error creating employee: %w", err)
	}

	return nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	sql, args, err := r.sb.Select("id", "name", "hire_datetime", "department_id", "job_id").
		From("employees").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get employee by ID SQL")
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	employee := &models.Employee{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&employee.ID,
		&employee.Name,
		&employee.HireDatetime,
		&employee.DepartmentID,
		&employee.JobID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error scanning employee row")
		return nil, fmt.Errorf("error getting employee by ID: %w", err)
	}

	return employee, nil
}

// GetAll retrieves employees with optional filters and pagination.
// The total row count rides along via a window function.
func (r *EmployeeRepository) GetAll(ctx context.Context, departmentID, jobID *int64, year *int, page, pageSize int) ([]models.Employee, int64, error) {
	query := r.sb.Select("id", "name", "hire_datetime", "department_id", "job_id").
		Column("COUNT(*) OVER()").
		From("employees")

	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	if jobID != nil {
		query = query.Where("job_id = ?", *jobID)
	}
	if year != nil {
		query = query.Where("EXTRACT(YEAR FROM hire_datetime) = ?", *year)
	}

	offset := (page - 1) * pageSize
	query = query.OrderBy("id ASC").Limit(uint64(pageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get all employees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all employees query")
		return nil, 0, fmt.Errorf("error querying employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	var total int64

	for rows.Next() {
		var employee models.Employee
		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.HireDatetime,
			&employee.DepartmentID,
			&employee.JobID,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return employees, total, nil
}

// Update updates an existing employee
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	sql, args, err := r.sb.Update("employees").
		Set("name", employee.Name).
		Set("hire_datetime", employee.HireDatetime).
		Set("department_id", employee.DepartmentID).
		Set("job_id", employee.JobID).
		Where(squirrel.Eq{"id": employee.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update employee SQL")
		return fmt.Errorf("failed to build update employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEmployeeBadReference
		}
		logger.Error().Err(err).Int64("employeeID", employee.ID).Msg("Error executing update employee query")
		return fmt.Errorf("error updating employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// Delete deletes an employee by ID
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete employee SQL")
		return fmt.Errorf("failed to build delete employee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("employeeID", id).Msg("Error executing delete employee query")
		return fmt.Errorf("error deleting employee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// UpsertBatchTx writes all employees inside the given transaction,
// overwriting every column when the id is already present.
func (r *EmployeeRepository) UpsertBatchTx(ctx context.Context, tx pgx.Tx, employees []*models.Employee) error {
	if len(employees) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, employee := range employees {
		sql, args, err := r.sb.Insert("employees").
			Columns("id", "name", "hire_datetime", "department_id", "job_id").
			Values(employee.ID, employee.Name, employee.HireDatetime, employee.DepartmentID, employee.JobID).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, hire_datetime = EXCLUDED.hire_datetime, department_id = EXCLUDED.department_id, job_id = EXCLUDED.job_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build upsert employee query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range employees {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error upserting employee: %w", err)
		}
	}

	return nil
}
