package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// UploadBatchRepository handles upload audit records
type UploadBatchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUploadBatchRepository creates a new UploadBatchRepository
func NewUploadBatchRepository(db *pgxpool.Pool) *UploadBatchRepository {
	return &UploadBatchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTx records an upload batch inside the given transaction so the
// audit row commits together with the ingested rows.
func (r *UploadBatchRepository) CreateTx(ctx context.Context, tx pgx.Tx, batch *models.UploadBatch) error {
	sql, args, err := r.sb.Insert("upload_batches").
		Columns("id", "model", "file_name", "stored_path", "total_rows", "processed_rows", "failed_rows").
		Values(batch.ID, batch.Model.String(), batch.FileName, batch.StoredPath, batch.TotalRows, batch.ProcessedRows, batch.FailedRows).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create upload batch SQL")
		return fmt.Errorf("failed to build create upload batch query: %w", err)
	}

	if err := tx.QueryRow(ctx, sql, args...).Scan(&batch.CreatedAt); err != nil {
		logger.Error().Err(err).Str("batchID", batch.ID.String()).Msg("Error executing create upload batch query")
		return fmt.Errorf("error creating upload batch: %w", err)
	}

	return nil
}

// GetByID retrieves an upload batch by its id
func (r *UploadBatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UploadBatch, error) {
	sql, args, err := r.sb.Select("id", "model", "file_name", "stored_path", "total_rows", "processed_rows", "failed_rows", "created_at").
		From("upload_batches").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get upload batch SQL")
		return nil, fmt.Errorf("failed to build get upload batch query: %w", err)
	}

	batch := &models.UploadBatch{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&batch.ID,
		&batch.Model,
		&batch.FileName,
		&batch.StoredPath,
		&batch.TotalRows,
		&batch.ProcessedRows,
		&batch.FailedRows,
		&batch.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUploadBatchNotFound
		}
		logger.Error().Err(err).Str("batchID", id.String()).Msg("Error scanning upload batch row")
		return nil, fmt.Errorf("error getting upload batch: %w", err)
	}

	return batch, nil
}

// GetAll retrieves a page of upload batches, newest first
func (r *UploadBatchRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.UploadBatch, error) {
	sql, args, err := r.sb.Select("id", "model", "file_name", "stored_path", "total_rows", "processed_rows", "failed_rows", "created_at").
		From("upload_batches").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all upload batches SQL")
		return nil, fmt.Errorf("failed to build get all upload batches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all upload batches query")
		return nil, fmt.Errorf("error querying upload batches: %w", err)
	}
	defer rows.Close()

	batches := []*models.UploadBatch{}
	for rows.Next() {
		batch := &models.UploadBatch{}
		err := rows.Scan(
			&batch.ID,
			&batch.Model,
			&batch.FileName,
			&batch.StoredPath,
			&batch.TotalRows,
			&batch.ProcessedRows,
			&batch.FailedRows,
			&batch.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning upload batch row: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upload batch rows: %w", err)
	}

	return batches, nil
}

// Count returns the total number of upload batches
func (r *UploadBatchRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("upload_batches").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count upload batches query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting upload batches: %w", err)
	}

	return count, nil
}
