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

// JobRepository handles job database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new job with its source-assigned id
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	sql, args, err := r.sb.Insert("jobs").
		Columns("id", "job").
		Values(job.ID, job.Title).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create job SQL")
		return fmt.Errorf("failed to build create job query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrJobAlreadyExists
		}
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing create job query")
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	sql, args, err := r.sb.Select("id", "job").
		From("jobs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job by ID SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job := &models.Job{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.Title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error getting job by ID: %w", err)
	}

	return job, nil
}

// GetAll retrieves a page of jobs ordered by title
func (r *JobRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]models.Job, error) {
	sql, args, err := r.sb.Select("id", "job").
		From("jobs").
		OrderBy("job ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all jobs SQL")
		return nil, fmt.Errorf("failed to build get all jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all jobs query")
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var job models.Job
		if err := rows.Scan(&job.ID, &job.Title); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// Count returns the total number of jobs
func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("jobs").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}

	return count, nil
}

// Update updates an existing job's title
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	sql, args, err := r.sb.Update("jobs").
		Set("job", job.Title).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update job SQL")
		return fmt.Errorf("failed to build update job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
		return fmt.Errorf("error updating job: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete deletes a job by ID. Jobs referenced by employees are protected
// by the foreign key and reported as in use.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("jobs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete job SQL")
		return fmt.Errorf("failed to build delete job query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrJobInUse
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// ExistingIDs returns which of the given job ids are present.
func (r *JobRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	sql, args, err := r.sb.Select("id").
		From("jobs").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build job ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing job ids query")
		return nil, fmt.Errorf("error querying job ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning job id: %w", err)
		}
		existing[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job ids: %w", err)
	}

	return existing, nil
}

// UpsertBatchTx writes all jobs inside the given transaction, updating the
// title when the id is already present.
func (r *JobRepository) UpsertBatchTx(ctx context.Context, tx pgx.Tx, jobs []*models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, job := range jobs {
		sql, args, err := r.sb.Insert("jobs").
			Columns("id", "job").
			Values(job.ID, job.Title).
			Suffix("ON CONFLICT (id) DO UPDATE SET job = EXCLUDED.job").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build upsert job query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range jobs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error upserting job: %w", err)
		}
	}

	return nil
}
