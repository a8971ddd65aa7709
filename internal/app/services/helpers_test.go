package services

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories/memory"
)

// countingCohortRepo counts storage calls; ValidID is not a storage call
type countingCohortRepo struct {
	repositories.CohortRepository
	calls   atomic.Int64
	batches atomic.Int64
}

func (r *countingCohortRepo) Create(ctx context.Context, c *models.Cohort) (*models.Cohort, error) {
	r.calls.Add(1)
	return r.CohortRepository.Create(ctx, c)
}

func (r *countingCohortRepo) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	r.calls.Add(1)
	return r.CohortRepository.GetByID(ctx, id)
}

func (r *countingCohortRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Cohort, error) {
	r.calls.Add(1)
	r.batches.Add(1)
	return r.CohortRepository.GetByIDs(ctx, ids)
}

func (r *countingCohortRepo) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	r.calls.Add(1)
	return r.CohortRepository.GetAll(ctx)
}

func (r *countingCohortRepo) Update(ctx context.Context, id string, p *models.CohortPatch) (*models.Cohort, error) {
	r.calls.Add(1)
	return r.CohortRepository.Update(ctx, id, p)
}

func (r *countingCohortRepo) Delete(ctx context.Context, id string) error {
	r.calls.Add(1)
	return r.CohortRepository.Delete(ctx, id)
}

type countingStudentRepo struct {
	repositories.StudentRepository
	calls atomic.Int64
}

func (r *countingStudentRepo) Create(ctx context.Context, s *models.Student) (*models.Student, error) {
	r.calls.Add(1)
	return r.StudentRepository.Create(ctx, s)
}

func (r *countingStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.calls.Add(1)
	return r.StudentRepository.GetByID(ctx, id)
}

func (r *countingStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	r.calls.Add(1)
	return r.StudentRepository.GetAll(ctx)
}

func (r *countingStudentRepo) Update(ctx context.Context, id string, p *models.StudentPatch) (*models.Student, error) {
	r.calls.Add(1)
	return r.StudentRepository.Update(ctx, id, p)
}

func (r *countingStudentRepo) Delete(ctx context.Context, id string) error {
	r.calls.Add(1)
	return r.StudentRepository.Delete(ctx, id)
}

type fixture struct {
	cohortRepo  *countingCohortRepo
	studentRepo *countingStudentRepo
	cohorts     CohortService
	students    StudentService
}

func newFixture() *fixture {
	cohortRepo := &countingCohortRepo{CohortRepository: memory.NewCohortRepository()}
	studentRepo := &countingStudentRepo{StudentRepository: memory.NewStudentRepository()}
	lgr := zerolog.Nop()

	return &fixture{
		cohortRepo:  cohortRepo,
		studentRepo: studentRepo,
		cohorts:     NewCohortService(cohortRepo, lgr),
		students:    NewStudentService(studentRepo, NewCohortResolver(cohortRepo, lgr), lgr),
	}
}

func webDev101() *models.Cohort {
	return &models.Cohort{
		CohortSlug: "web-dev-101",
		CohortName: "Web Dev 101",
		Program:    models.ProgramWebDev,
		Format:     models.FormatFullTime,
		Campus:     "Berlin",
		TotalHours: 360,
	}
}

func strPtr(s string) *string { return &s }
