package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// ReportRepository runs the fixed hiring report aggregations.
// Both reports only consider employees whose hire datetime, department
// and job are all present.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// HiresByQuarter counts hires per department, job and calendar quarter for
// the given year. Quarters without hires come back as zero through the
// conditional sums; combinations without any hire that year do not appear.
func (r *ReportRepository) HiresByQuarter(ctx context.Context, year int) ([]models.QuarterHires, error) {
	query := r.sb.Select("d.department", "j.job").
		Column(squirrel.Expr("SUM(CASE WHEN EXTRACT(QUARTER FROM e.hire_datetime) = 1 THEN 1 ELSE 0 END)::int AS q1")).
		Column(squirrel.Expr("SUM(CASE WHEN EXTRACT(QUARTER FROM e.hire_datetime) = 2 THEN 1 ELSE 0 END)::int AS q2")).
		Column(squirrel.Expr("SUM(CASE WHEN EXTRACT(QUARTER FROM e.hire_datetime) = 3 THEN 1 ELSE 0 END)::int AS q3")).
		Column(squirrel.Expr("SUM(CASE WHEN EXTRACT(QUARTER FROM e.hire_datetime) = 4 THEN 1 ELSE 0 END)::int AS q4")).
		From("employees e").
		Join("departments d ON d.id = e.department_id").
		Join("jobs j ON j.id = e.job_id").
		Where("EXTRACT(YEAR FROM e.hire_datetime) = ?", year).
		GroupBy("d.department", "j.job").
		OrderBy("d.department ASC", "j.job ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building hires by quarter SQL")
		return nil, fmt.Errorf("failed to build hires by quarter query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("year", year).Msg("Error executing hires by quarter query")
		return nil, fmt.Errorf("error querying hires by quarter: %w", err)
	}
	defer rows.Close()

	results := []models.QuarterHires{}
	for rows.Next() {
		var row models.QuarterHires
		if err := rows.Scan(&row.Department, &row.Job, &row.Q1, &row.Q2, &row.Q3, &row.Q4); err != nil {
			return nil, fmt.Errorf("error scanning hires by quarter row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hires by quarter rows: %w", err)
	}

	return results, nil
}

// DepartmentsAboveMeanHires returns the departments whose hire count for
// the given year strictly exceeds the mean over all departments that hired
// at least one employee that year, ordered by count descending with the
// department id as tie-break.
func (r *ReportRepository) DepartmentsAboveMeanHires(ctx context.Context, year int) ([]models.DepartmentHires, error) {
	inner := r.sb.Select("d.id", "d.department").
		Column(squirrel.Expr("COUNT(e.id) AS hired")).
		From("departments d").
		Join("employees e ON e.department_id = d.id").
		Where("EXTRACT(YEAR FROM e.hire_datetime) = ?", year).
		GroupBy("d.id", "d.department")

	innerSQL, innerArgs, err := inner.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building department hires SQL")
		return nil, fmt.Errorf("failed to build department hires query: %w", err)
	}

	// The mean threshold is computed over the same grouped counts, so the
	// aggregation runs once as a CTE.
	sql := fmt.Sprintf(`WITH dept_hires AS (%s)
SELECT id, department, hired::int
FROM dept_hires
WHERE hired > (SELECT AVG(hired) FROM dept_hires)
ORDER BY hired DESC, id ASC`, innerSQL)

	rows, err := r.db.Query(ctx, sql, innerArgs...)
	if err != nil {
		logger.Error().Err(err).Int("year", year).Msg("Error executing departments above mean query")
		return nil, fmt.Errorf("error querying departments above mean: %w", err)
	}
	defer rows.Close()

	results := []models.DepartmentHires{}
	for rows.Next() {
		var row models.DepartmentHires
		if err := rows.Scan(&row.ID, &row.Department, &row.Hired); err != nil {
			return nil, fmt.Errorf("error scanning department hires row: %w", err)
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department hires rows: %w", err)
	}

	return results, nil
}
