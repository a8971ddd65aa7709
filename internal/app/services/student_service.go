package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

// StudentService defines the interface for student operations. Reads return
// students with their cohort resolved; writes return the stored reference.
type StudentService interface {
	GetAll(ctx context.Context) ([]*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.StudentRepository
	resolver    CohortResolver
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, resolver CohortResolver, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// GetAll retrieves all students with their cohorts
func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*dto.StudentResponse, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	resolved, err := s.resolver.Resolve(ctx, students)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return resolved, nil
}

// GetByID retrieves a student by ID with the cohort resolved
func (s *studentServiceImpl) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	if !s.studentRepo.ValidID(id) {
		return nil, apperrors.NewInvalidIDError(id)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	resolved, err := s.resolver.ResolveOne(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return resolved, nil
}

// Create validates and stores a new student. The cohort reference is stored
// as given; it is not required to exist.
func (s *studentServiceImpl) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil {
		return nil, apperrors.NewBadRequestError("student body is required")
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Debug().Str("studentID", created.ID).Msg("Student created")
	return created, nil
}

// Update applies a partial update to an existing student
func (s *studentServiceImpl) Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	if !s.studentRepo.ValidID(id) {
		return nil, apperrors.NewInvalidIDError(id)
	}
	if patch == nil {
		patch = &models.StudentPatch{}
	}

	updated, err := s.studentRepo.Update(ctx, id, patch)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if updated == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return updated, nil
}

// Delete removes a student; deleting an absent student succeeds
func (s *studentServiceImpl) Delete(ctx context.Context, id string) error {
	if !s.studentRepo.ValidID(id) {
		return apperrors.NewInvalidIDError(id)
	}

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
