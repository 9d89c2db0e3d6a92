package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/helpers"
)

// JobService defines the interface for job-related operations
type JobService interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJobByID(ctx context.Context, id int64) (*models.Job, error)
	GetAllJobs(ctx context.Context, page, pageSize int) ([]models.Job, int64, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

// jobServiceImpl implements the JobService interface
type jobServiceImpl struct {
	jobRepo *repositories.JobRepository
}

// NewJobService creates a new job service instance
func NewJobService(jobRepo *repositories.JobRepository) JobService {
	return &jobServiceImpl{
		jobRepo: jobRepo,
	}
}

// validateJob validates job data before database operations
func (s *jobServiceImpl) validateJob(job *models.Job) error {
	if job == nil {
		return fmt.Errorf("%w: job is nil", apperrors.ErrValidationFailed)
	}

	if job.ID <= 0 {
		return fmt.Errorf("%w: job ID must be positive", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(job.Title) == "" {
		return fmt.Errorf("%w: job title cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateJob creates a new job
func (s *jobServiceImpl) CreateJob(ctx context.Context, job *models.Job) error {
	if err := s.validateJob(job); err != nil {
		return err
	}

	err := s.jobRepo.Create(ctx, job)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobAlreadyExists) {
			return apperrors.ErrJobAlreadyExists
		}
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetJobByID retrieves a job by ID
func (s *jobServiceImpl) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid job ID", apperrors.ErrValidationFailed)
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// GetAllJobs retrieves jobs with pagination
func (s *jobServiceImpl) GetAllJobs(ctx context.Context, page, pageSize int) ([]models.Job, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	jobs, err := s.jobRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving jobs: %w", err)
	}

	total, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	return jobs, total, nil
}

// UpdateJob updates an existing job
func (s *jobServiceImpl) UpdateJob(ctx context.Context, job *models.Job) error {
	if err := s.validateJob(job); err != nil {
		return err
	}

	err := s.jobRepo.Update(ctx, job)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("error updating job: %w", err)
	}
	return nil
}

// DeleteJob deletes a job by ID
func (s *jobServiceImpl) DeleteJob(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid job ID", apperrors.ErrValidationFailed)
	}

	err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		if errors.Is(err, apperrors.ErrJobInUse) {
			return apperrors.ErrJobInUse
		}
		return fmt.Errorf("error deleting job: %w", err)
	}
	return nil
}
