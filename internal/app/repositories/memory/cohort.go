package memory

import (
	"context"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// CohortRepository stores cohorts in memory
type CohortRepository struct {
	cohorts *collection[models.Cohort]
}

// NewCohortRepository creates an empty in-memory cohort store
func NewCohortRepository() *CohortRepository {
	return &CohortRepository{cohorts: newCollection(cloneCohort)}
}

func cloneCohort(c *models.Cohort) *models.Cohort {
	out := *c
	if c.StartDate != nil {
		start := *c.StartDate
		out.StartDate = &start
	}
	if c.EndDate != nil {
		end := *c.EndDate
		out.EndDate = &end
	}
	return &out
}

// ValidID reports whether id is a UUID
func (r *CohortRepository) ValidID(id string) bool { return validID(id) }

// Create validates and stores a new cohort
func (r *CohortRepository) Create(_ context.Context, cohort *models.Cohort) (*models.Cohort, error) {
	if err := validation.Struct(cohort); err != nil {
		return nil, err
	}
	doc := cloneCohort(cohort)
	doc.ID = newID()
	r.cohorts.insert(doc.ID, doc)
	return cloneCohort(doc), nil
}

// GetByID returns the cohort or nil when absent
func (r *CohortRepository) GetByID(_ context.Context, id string) (*models.Cohort, error) {
	return r.cohorts.get(id), nil
}

// GetByIDs returns the cohorts found among ids, keyed by their stored id
func (r *CohortRepository) GetByIDs(_ context.Context, ids []string) (map[string]*models.Cohort, error) {
	found := make(map[string]*models.Cohort, len(ids))
	for _, id := range ids {
		if c := r.cohorts.get(id); c != nil {
			found[c.ID] = c
		}
	}
	return found, nil
}

// GetAll returns every cohort in insertion order
func (r *CohortRepository) GetAll(_ context.Context) ([]*models.Cohort, error) {
	return r.cohorts.all(), nil
}

// Update merges patch into the stored cohort
func (r *CohortRepository) Update(_ context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error) {
	return r.cohorts.modify(id, func(c *models.Cohort) error {
		patch.Apply(c)
		return validation.Struct(c)
	})
}

// Delete removes the cohort; absent ids are ignored
func (r *CohortRepository) Delete(_ context.Context, id string) error {
	r.cohorts.remove(id)
	return nil
}

// Count returns the number of stored cohorts
func (r *CohortRepository) Count(_ context.Context) (int64, error) {
	return r.cohorts.count(), nil
}
