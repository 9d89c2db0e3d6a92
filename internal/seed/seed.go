package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/JuanS3/globant-data-eng/internal/app/models"
	appRepos "github.com/JuanS3/globant-data-eng/internal/app/repositories"
	"github.com/JuanS3/globant-data-eng/internal/pkg/apperrors"
)

// CreateDevFixtures inserts a small set of departments, jobs and
// employees for local development. Existing rows are left untouched, so
// the seed is safe to run on every startup.
func CreateDevFixtures(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	jobRepo := appRepos.NewJobRepository(dbPool)
	employeeRepo := appRepos.NewEmployeeRepository(dbPool)

	lgr.Info().Msg("Seeding development fixtures...")
	var finalErr error

	departments := []*appModels.Department{
		{ID: 1, Name: "Supply Chain"},
		{ID: 2, Name: "Maintenance"},
		{ID: 3, Name: "Staff"},
	}
	for _, department := range departments {
		if err := departmentRepo.Create(ctx, department); err != nil && !errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Int64("id", department.ID).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	jobs := []*appModels.Job{
		{ID: 1, Title: "Recruiter"},
		{ID: 2, Title: "Manager"},
		{ID: 3, Title: "Analyst"},
	}
	for _, job := range jobs {
		if err := jobRepo.Create(ctx, job); err != nil && !errors.Is(err, apperrors.ErrJobAlreadyExists) {
			lgr.Error().Err(err).Int64("id", job.ID).Msg("Error seeding job")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, employee := range devEmployees() {
		if err := employeeRepo.Create(ctx, employee); err != nil && !errors.Is(err, apperrors.ErrEmployeeAlreadyExists) {
			lgr.Error().Err(err).Int64("id", employee.ID).Msg("Error seeding employee")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Development fixtures seeded.")
	return finalErr
}

func devEmployees() []*appModels.Employee {
	name := func(s string) *string { return &s }
	id := func(v int64) *int64 { return &v }
	at := func(s string) *time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil
		}
		return &t
	}

	return []*appModels.Employee{
		{ID: 4535, Name: name("Marcelo Gonzalez"), HireDatetime: at("2021-07-27T16:02:08Z"), DepartmentID: id(1), JobID: id(2)},
		{ID: 4572, Name: name("Lidia Mendez"), HireDatetime: at("2021-07-27T19:04:09Z"), DepartmentID: id(1), JobID: id(2)},
		{ID: 9423, Name: name("Joaquin Soler"), HireDatetime: at("2021-02-17T09:30:00Z"), DepartmentID: id(2), JobID: id(3)},
		{ID: 9444, Name: name("Ana Ferreyra"), HireDatetime: at("2021-11-09T14:15:22Z"), DepartmentID: id(3), JobID: id(1)},
	}
}
