package memory

import (
	"context"
	"strings"
	"time"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// UserRepository stores users in memory
type UserRepository struct {
	users *collection[models.User]
}

// NewUserRepository creates an empty in-memory user store
func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection(func(u *models.User) *models.User {
		out := *u
		return &out
	})}
}

func (r *UserRepository) ValidID(id string) bool { return validID(id) }

func (r *UserRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	if err := validation.Struct(user); err != nil {
		return nil, err
	}
	doc := *user
	doc.ID = newID()
	doc.Email = strings.ToLower(doc.Email)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	sameEmail := func(existing *models.User) bool { return existing.Email == doc.Email }
	if !r.users.insertUnique(doc.ID, &doc, sameEmail) {
		return nil, apperrors.ErrEmailTaken
	}
	return r.users.get(doc.ID), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.users.get(id), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.users.find(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	}), nil
}
