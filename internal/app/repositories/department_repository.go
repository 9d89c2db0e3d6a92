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

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new department with its source-assigned id
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("id", "department").
		Values(department.ID, department.Name).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create department SQL")
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Int64("departmentID", department.ID).Msg("Error executing create department query")
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "department").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get department by ID SQL")
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by ID: %w", err)
	}

	return department, nil
}

// GetAll retrieves a page of departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.Department, error) {
	sql, args, err := r.sb.Select("id", "department").
		From("departments").
		OrderBy("department ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all departments SQL")
		return nil, fmt.Errorf("failed to build get all departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all departments query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// Count returns the total number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("departments").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count departments query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}

	return count, nil
}

// Update updates an existing department's name
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("department", department.Name).
		Where(squirrel.Eq{"id": department.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update department SQL")
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", department.ID).Msg("Error executing update department query")
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID. Departments referenced by employees
// are protected by the foreign key and reported as in use.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete department SQL")
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentInUse
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// ExistingIDs returns which of the given department ids are present.
func (r *DepartmentRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	sql, args, err := r.sb.Select("id").
		From("departments").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing department ids query")
		return nil, fmt.Errorf("error querying department ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning department id: %w", err)
		}
		existing[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department ids: %w", err)
	}

	return existing, nil
}

// UpsertBatchTx writes all departments inside the given transaction,
// updating the name when the id is already present.
func (r *DepartmentRepository) UpsertBatchTx(ctx context.Context, tx pgx.Tx, departments []*models.Department) error {
	if len(departments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, department := range departments {
		sql, args, err := r.sb.Insert("departments").
			Columns("id", "department").
			Values(department.ID, department.Name).
			Suffix("ON CONFLICT (id) DO UPDATE SET department = EXCLUDED.department").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build upsert department query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range departments {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error upserting department: %w", err)
		}
	}

	return nil
}
