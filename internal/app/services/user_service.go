package services

import (
	"context"
	"fmt"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

// UserService defines the interface for user lookups
type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// GetByID retrieves a user by ID
func (s *userServiceImpl) GetByID(ctx context.Context, id string) (*models.User, error) {
	if !s.userRepo.ValidID(id) {
		return nil, apperrors.NewInvalidIDError(id)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
