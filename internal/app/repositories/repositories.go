package repositories

import (
	"context"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
)

// Absent documents are reported as a (nil, nil) result, never as an error.

// CohortRepository is the entity store for cohorts.
type CohortRepository interface {
	// ValidID reports whether id has the store's identifier format.
	ValidID(id string) bool
	Create(ctx context.Context, cohort *models.Cohort) (*models.Cohort, error)
	GetByID(ctx context.Context, id string) (*models.Cohort, error)
	// GetByIDs returns the cohorts that exist among ids, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.Cohort, error)
	GetAll(ctx context.Context) ([]*models.Cohort, error)
	Update(ctx context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// StudentRepository is the entity store for students.
type StudentRepository interface {
	ValidID(id string) bool
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository is the minimal user store behind the protected lookup.
type UserRepository interface {
	ValidID(id string) bool
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CohortRepository  CohortRepository
	StudentRepository StudentRepository
	UserRepository    UserRepository

	// close releases the underlying storage handle, if the backend owns one.
	close func(ctx context.Context) error
}

// NewRepositories bundles already constructed repositories.
func NewRepositories(cohorts CohortRepository, students StudentRepository, users UserRepository, closeFn func(ctx context.Context) error) *Repositories {
	return &Repositories{
		CohortRepository:  cohorts,
		StudentRepository: students,
		UserRepository:    users,
		close:             closeFn,
	}
}

// Close releases the storage handle behind the repositories.
func (r *Repositories) Close(ctx context.Context) error {
	if r == nil || r.close == nil {
		return nil
	}
	return r.close(ctx)
}
