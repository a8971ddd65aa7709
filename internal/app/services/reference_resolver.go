package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories"
)

// CohortResolver replaces student cohort references with cohort documents
type CohortResolver interface {
	Resolve(ctx context.Context, students []*models.Student) ([]*dto.StudentResponse, error)
	ResolveOne(ctx context.Context, student *models.Student) (*dto.StudentResponse, error)
}

// cohortResolverImpl implements the CohortResolver interface
type cohortResolverImpl struct {
	cohortRepo repositories.CohortRepository
	logger     zerolog.Logger
}

// NewCohortResolver creates a new resolver over the cohort store
func NewCohortResolver(cohortRepo repositories.CohortRepository, logger zerolog.Logger) CohortResolver {
	return &cohortResolverImpl{
		cohortRepo: cohortRepo,
		logger:     logger,
	}
}

// Resolve looks every distinct reference up in a single batch. References
// that point at no cohort resolve to nil and are logged.
func (r *cohortResolverImpl) Resolve(ctx context.Context, students []*models.Student) ([]*dto.StudentResponse, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(students))
	for _, s := range students {
		if !s.HasCohort() {
			continue
		}
		if _, ok := seen[*s.CohortID]; ok {
			continue
		}
		seen[*s.CohortID] = struct{}{}
		ids = append(ids, *s.CohortID)
	}

	cohorts := map[string]*models.Cohort{}
	if len(ids) > 0 {
		found, err := r.cohortRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("error resolving cohort references: %w", err)
		}
		cohorts = found
	}

	resolved := make([]*dto.StudentResponse, 0, len(students))
	for _, s := range students {
		var cohort *models.Cohort
		if s.HasCohort() {
			cohort = cohorts[*s.CohortID]
			if cohort == nil {
				r.logger.Warn().
					Str("studentID", s.ID).
					Str("cohortID", *s.CohortID).
					Msg("Student references a cohort that does not exist")
			}
		}
		resolved = append(resolved, dto.NewStudentResponse(s, cohort))
	}
	return resolved, nil
}

// ResolveOne resolves the reference of a single student
func (r *cohortResolverImpl) ResolveOne(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	resolved, err := r.Resolve(ctx, []*models.Student{student})
	if err != nil {
		return nil, err
	}
	return resolved[0], nil
}
