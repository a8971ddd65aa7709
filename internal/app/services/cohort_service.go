package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

// CohortService defines the interface for cohort operations
type CohortService interface {
	GetAll(ctx context.Context) ([]*models.Cohort, error)
	GetByID(ctx context.Context, id string) (*models.Cohort, error)
	Create(ctx context.Context, cohort *models.Cohort) (*models.Cohort, error)
	Update(ctx context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error)
	Delete(ctx context.Context, id string) error
}

// cohortServiceImpl implements the CohortService interface
type cohortServiceImpl struct {
	cohortRepo repositories.CohortRepository
	logger     zerolog.Logger
}

// NewCohortService creates a new cohort service instance
func NewCohortService(cohortRepo repositories.CohortRepository, logger zerolog.Logger) CohortService {
	return &cohortServiceImpl{
		cohortRepo: cohortRepo,
		logger:     logger,
	}
}

// GetAll retrieves all cohorts
func (s *cohortServiceImpl) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	cohorts, err := s.cohortRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cohorts: %w", err)
	}
	return cohorts, nil
}

// GetByID retrieves a cohort by ID
func (s *cohortServiceImpl) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	if !s.cohortRepo.ValidID(id) {
		return nil, apperrors.NewInvalidIDError(id)
	}

	cohort, err := s.cohortRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}
	if cohort == nil {
		return nil, apperrors.ErrCohortNotFound
	}
	return cohort, nil
}

// Create validates and stores a new cohort
func (s *cohortServiceImpl) Create(ctx context.Context, cohort *models.Cohort) (*models.Cohort, error) {
	if cohort == nil {
		return nil, apperrors.NewBadRequestError("cohort body is required")
	}

	created, err := s.cohortRepo.Create(ctx, cohort)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating cohort: %w", err)
	}

	s.logger.Debug().Str("cohortID", created.ID).Str("cohortName", created.CohortName).Msg("Cohort created")
	return created, nil
}

// Update applies a partial update to an existing cohort
func (s *cohortServiceImpl) Update(ctx context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error) {
	if !s.cohortRepo.ValidID(id) {
		return nil, apperrors.NewInvalidIDError(id)
	}
	if patch == nil {
		patch = &models.CohortPatch{}
	}

	updated, err := s.cohortRepo.Update(ctx, id, patch)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating cohort: %w", err)
	}
	if updated == nil {
		return nil, apperrors.ErrCohortNotFound
	}
	return updated, nil
}

// Delete removes a cohort. Students referencing it are left untouched.
func (s *cohortServiceImpl) Delete(ctx context.Context, id string) error {
	if !s.cohortRepo.ValidID(id) {
		return apperrors.NewInvalidIDError(id)
	}

	if err := s.cohortRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}

	s.logger.Debug().Str("cohortID", id).Msg("Cohort deleted")
	return nil
}
