package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/db"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
	"github.com/JuanS3/globant-data-eng/internal/pkg/csvutil"
	"github.com/JuanS3/globant-data-eng/internal/pkg/filestorage"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
)

// UploadService defines the interface for CSV ingestion operations
type UploadService interface {
	IngestCSV(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error)
	GetBatchByID(ctx context.Context, id uuid.UUID) (*dto.UploadBatchResponse, error)
	GetAllBatches(ctx context.Context, page, pageSize int) (*dto.UploadBatchListResponse, error)
}

// uploadServiceImpl implements the UploadService interface
type uploadServiceImpl struct {
	database       *db.PostgresDB
	departmentRepo *repositories.DepartmentRepository
	jobRepo        *repositories.JobRepository
	employeeRepo   *repositories.EmployeeRepository
	batchRepo      *repositories.UploadBatchRepository
	storage        filestorage.ArchiveStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(
	database *db.PostgresDB,
	departmentRepo *repositories.DepartmentRepository,
	jobRepo *repositories.JobRepository,
	employeeRepo *repositories.EmployeeRepository,
	batchRepo *repositories.UploadBatchRepository,
	storage filestorage.ArchiveStorage,
) UploadService {
	return &uploadServiceImpl{
		database:       database,
		departmentRepo: departmentRepo,
		jobRepo:        jobRepo,
		employeeRepo:   employeeRepo,
		batchRepo:      batchRepo,
		storage:        storage,
	}
}

// IngestCSV parses a CSV payload for the given model, validates every
// row, and writes the valid rows in a single transaction. Row-level
// failures are collected and reported; only structural problems
// (unknown model, unparsable or empty payload) fail the whole request.
func (s *uploadServiceImpl) IngestCSV(ctx context.Context, modelName, fileName string, data []byte) (*dto.UploadResultResponse, error) {
	model, ok := models.ParseUploadModel(modelName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownUploadModel, modelName)
	}

	records, err := csvutil.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	batch := &models.UploadBatch{
		ID:       uuid.New(),
		Model:    model,
		FileName: fileName,
	}

	var (
		failures    []dto.RowFailure
		departments []*models.Department
		jobs        []*models.Job
		employees   []*models.Employee
	)

	switch model {
	case models.UploadModelDepartments:
		departments, failures = mapDepartmentRows(records)
		batch.TotalRows = len(departments) + len(failures)
	case models.UploadModelJobs:
		jobs, failures = mapJobRows(records)
		batch.TotalRows = len(jobs) + len(failures)
	case models.UploadModelEmployees:
		employees, failures, err = s.mapEmployeeRows(ctx, records)
		if err != nil {
			return nil, err
		}
		batch.TotalRows = len(employees) + len(failures)
	}

	batch.ProcessedRows = batch.TotalRows - len(failures)
	batch.FailedRows = len(failures)

	if batch.TotalRows == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	storedPath, err := s.storage.Archive(model.String(), batch.ID, fileName, data)
	if err != nil {
		return nil, fmt.Errorf("error archiving upload: %w", err)
	}
	batch.StoredPath = storedPath

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		switch model {
		case models.UploadModelDepartments:
			if len(departments) > 0 {
				if err := s.departmentRepo.UpsertBatchTx(ctx, tx, departments); err != nil {
					return err
				}
			}
		case models.UploadModelJobs:
			if len(jobs) > 0 {
				if err := s.jobRepo.UpsertBatchTx(ctx, tx, jobs); err != nil {
					return err
				}
			}
		case models.UploadModelEmployees:
			if len(employees) > 0 {
				if err := s.employeeRepo.UpsertBatchTx(ctx, tx, employees); err != nil {
					return err
				}
			}
		}
		return s.batchRepo.CreateTx(ctx, tx, batch)
	})
	if err != nil {
		if removeErr := s.storage.Remove(storedPath); removeErr != nil {
			logger.Warn().Err(removeErr).Str("path", storedPath).Msg("Failed to remove archived file after rollback")
		}
		return nil, fmt.Errorf("error writing upload batch: %w", err)
	}

	logger.Info().
		Str("batchId", batch.ID.String()).
		Str("model", model.String()).
		Int("processed", batch.ProcessedRows).
		Int("failed", batch.FailedRows).
		Msg("CSV batch ingested")

	if failures == nil {
		failures = make([]dto.RowFailure, 0)
	}

	return &dto.UploadResultResponse{
		BatchID:   batch.ID.String(),
		Model:     model.String(),
		FileName:  fileName,
		TotalRows: batch.TotalRows,
		Processed: batch.ProcessedRows,
		Failed:    batch.FailedRows,
		Failures:  failures,
	}, nil
}

// GetBatchByID retrieves one upload audit record
func (s *uploadServiceImpl) GetBatchByID(ctx context.Context, id uuid.UUID) (*dto.UploadBatchResponse, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUploadBatchNotFound) {
			return nil, apperrors.ErrUploadBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving upload batch: %w", err)
	}

	resp := dto.FromUploadBatch(batch)
	return &resp, nil
}

// GetAllBatches retrieves upload audit records, newest first
func (s *uploadServiceImpl) GetAllBatches(ctx context.Context, page, pageSize int) (*dto.UploadBatchListResponse, error) {
	offset := uint64((page - 1) * pageSize)

	batches, err := s.batchRepo.GetAll(ctx, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving upload batches: %w", err)
	}

	total, err := s.batchRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting upload batches: %w", err)
	}

	batchResponses := make([]dto.UploadBatchResponse, 0, len(batches))
	for _, batch := range batches {
		batchResponses = append(batchResponses, dto.FromUploadBatch(batch))
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return &dto.UploadBatchListResponse{
		Batches: batchResponses,
		PaginationInfo: dto.PaginationInfo{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int(totalPages),
		},
	}, nil
}

// mapDepartmentRows converts CSV records into departments. Layout:
// id, department. Blank rows are skipped.
func mapDepartmentRows(records [][]string) ([]*models.Department, []dto.RowFailure) {
	var (
		departments []*models.Department
		failures    []dto.RowFailure
	)

	for i, row := range records {
		rowNum := i + 1
		if csvutil.IsEmptyRow(row) {
			continue
		}

		if len(row) != models.UploadModelDepartments.ColumnCount() {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: fmt.Sprintf("expected %d columns, got %d", models.UploadModelDepartments.ColumnCount(), len(row))})
			continue
		}

		id, err := parseRowID(row[0])
		if err != nil {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: err.Error()})
			continue
		}

		name := csvutil.CleanCell(row[1])
		if name == "" {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: "department name cannot be empty"})
			continue
		}

		departments = append(departments, &models.Department{ID: id, Name: name})
	}

	return departments, failures
}

// mapJobRows converts CSV records into jobs. Layout: id, job.
func mapJobRows(records [][]string) ([]*models.Job, []dto.RowFailure) {
	var (
		jobs     []*models.Job
		failures []dto.RowFailure
	)

	for i, row := range records {
		rowNum := i + 1
		if csvutil.IsEmptyRow(row) {
			continue
		}

		if len(row) != models.UploadModelJobs.ColumnCount() {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: fmt.Sprintf("expected %d columns, got %d", models.UploadModelJobs.ColumnCount(), len(row))})
			continue
		}

		id, err := parseRowID(row[0])
		if err != nil {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: err.Error()})
			continue
		}

		title := csvutil.CleanCell(row[1])
		if title == "" {
			failures = append(failures, dto.RowFailure{Row: rowNum, Reason: "job title cannot be empty"})
			continue
		}

		jobs = append(jobs, &models.Job{ID: id, Title: title})
	}

	return jobs, failures
}

// employeeCandidate holds a parsed employee row until its references
// have been checked against the store.
type employeeCandidate struct {
	rowNum   int
	employee *models.Employee
}

// mapEmployeeRows converts CSV records into employees. Layout: id,
// name, datetime, department_id, job_id. Optional cells left blank
// become NULL; rows referencing a department or job that does not
// exist fail individually. The returned error reports lookup problems
// only, never row content.
func (s *uploadServiceImpl) mapEmployeeRows(ctx context.Context, records [][]string) ([]*models.Employee, []dto.RowFailure, error) {
	var (
		candidates []employeeCandidate
		failures   []dto.RowFailure
	)

	for i, row := range records {
		rowNum := i + 1
		if csvutil.IsEmptyRow(row) {
			continue
		}

		employee, failure := parseEmployeeRow(row, rowNum)
		if failure != nil {
			failures = append(failures, *failure)
			continue
		}

		candidates = append(candidates, employeeCandidate{rowNum: rowNum, employee: employee})
	}

	knownDepartments, knownJobs, err := s.lookupReferences(ctx, candidates)
	if err != nil {
		return nil, nil, err
	}

	employees := make([]*models.Employee, 0, len(candidates))
	for _, c := range candidates {
		if c.employee.DepartmentID != nil {
			if _, ok := knownDepartments[*c.employee.DepartmentID]; !ok {
				failures = append(failures, dto.RowFailure{Row: c.rowNum, Reason: fmt.Sprintf("department_id %d does not exist", *c.employee.DepartmentID)})
				continue
			}
		}
		if c.employee.JobID != nil {
			if _, ok := knownJobs[*c.employee.JobID]; !ok {
				failures = append(failures, dto.RowFailure{Row: c.rowNum, Reason: fmt.Sprintf("job_id %d does not exist", *c.employee.JobID)})
				continue
			}
		}
		employees = append(employees, c.employee)
	}

	return employees, failures, nil
}

// lookupReferences fetches the set of department and job ids referenced
// by the candidate rows in two queries.
func (s *uploadServiceImpl) lookupReferences(ctx context.Context, candidates []employeeCandidate) (map[int64]struct{}, map[int64]struct{}, error) {
	departmentIDs := make(map[int64]struct{})
	jobIDs := make(map[int64]struct{})
	for _, c := range candidates {
		if c.employee.DepartmentID != nil {
			departmentIDs[*c.employee.DepartmentID] = struct{}{}
		}
		if c.employee.JobID != nil {
			jobIDs[*c.employee.JobID] = struct{}{}
		}
	}

	knownDepartments := map[int64]struct{}{}
	if len(departmentIDs) > 0 {
		ids := make([]int64, 0, len(departmentIDs))
		for id := range departmentIDs {
			ids = append(ids, id)
		}
		known, err := s.departmentRepo.ExistingIDs(ctx, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("error checking department references: %w", err)
		}
		knownDepartments = known
	}

	knownJobs := map[int64]struct{}{}
	if len(jobIDs) > 0 {
		ids := make([]int64, 0, len(jobIDs))
		for id := range jobIDs {
			ids = append(ids, id)
		}
		known, err := s.jobRepo.ExistingIDs(ctx, ids)
		if err != nil {
			return nil, nil, fmt.Errorf("error checking job references: %w", err)
		}
		knownJobs = known
	}

	return knownDepartments, knownJobs, nil
}

// parseEmployeeRow parses one employee CSV row. Optional cells left
// blank become nil, which the repository writes as NULL.
func parseEmployeeRow(row []string, rowNum int) (*models.Employee, *dto.RowFailure) {
	if len(row) != models.UploadModelEmployees.ColumnCount() {
		return nil, &dto.RowFailure{Row: rowNum, Reason: fmt.Sprintf("expected %d columns, got %d", models.UploadModelEmployees.ColumnCount(), len(row))}
	}

	id, err := parseRowID(row[0])
	if err != nil {
		return nil, &dto.RowFailure{Row: rowNum, Reason: err.Error()}
	}

	employee := &models.Employee{ID: id}

	if name := csvutil.CleanCell(row[1]); name != "" {
		employee.Name = &name
	}

	if cell := csvutil.CleanCell(row[2]); cell != "" {
		ts, err := csvutil.ParseTimestamp(cell)
		if err != nil {
			return nil, &dto.RowFailure{Row: rowNum, Reason: fmt.Sprintf("invalid hire timestamp %q", cell)}
		}
		employee.HireDatetime = &ts
	}

	departmentID, err := parseOptionalID(row[3], "department_id")
	if err != nil {
		return nil, &dto.RowFailure{Row: rowNum, Reason: err.Error()}
	}
	employee.DepartmentID = departmentID

	jobID, err := parseOptionalID(row[4], "job_id")
	if err != nil {
		return nil, &dto.RowFailure{Row: rowNum, Reason: err.Error()}
	}
	employee.JobID = jobID

	return employee, nil
}

// parseRowID parses the mandatory first column of every layout.
func parseRowID(cell string) (int64, error) {
	cleaned := csvutil.CleanCell(cell)
	id, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", cleaned)
	}
	return id, nil
}

// parseOptionalID parses a reference column that may be blank.
func parseOptionalID(cell, column string) (*int64, error) {
	cleaned := csvutil.CleanCell(cell)
	if cleaned == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s %q", column, cleaned)
	}
	return &id, nil
}
