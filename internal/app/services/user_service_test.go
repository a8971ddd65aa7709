package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories/memory"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

func TestUserServiceGetByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)

	created, err := repo.Create(ctx, &models.User{Email: "admin@cohort-tools.dev", Name: "Admin"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetByID(ctx, "123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)

	_, err = svc.GetByID(ctx, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
