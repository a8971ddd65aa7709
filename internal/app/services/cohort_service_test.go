package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

func TestCohortCreateAssignsFreshID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	input := webDev101()
	created, err := f.cohorts.Create(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := f.cohorts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	input.ID = created.ID
	assert.Equal(t, input, got)

	other, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID, "slugs are not unique, ids are")
}

func TestCohortCreateValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	missingName := webDev101()
	missingName.CohortName = ""
	_, err := f.cohorts.Create(ctx, missingName)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "cohortName", ce.Field)

	badFormat := webDev101()
	badFormat.Format = "Weekends"
	_, err = f.cohorts.Create(ctx, badFormat)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	negative := webDev101()
	negative.TotalHours = -1
	_, err = f.cohorts.Create(ctx, negative)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	all, err := f.cohorts.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCohortMalformedIDNeverReachesStorage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	name := "x"

	_, err := f.cohorts.GetByID(ctx, "123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	_, err = f.cohorts.Update(ctx, "123", &models.CohortPatch{CohortName: &name})
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	err = f.cohorts.Delete(ctx, "123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)

	assert.Zero(t, f.cohortRepo.calls.Load())
}

func TestCohortNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	absent := "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"

	_, err := f.cohorts.GetByID(ctx, absent)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrCohortNotFound)

	_, err = f.cohorts.Update(ctx, absent, &models.CohortPatch{})
	assert.ErrorIs(t, err, apperrors.ErrCohortNotFound)
}

func TestCohortPartialUpdateTouchesOnlySuppliedField(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)

	format := models.FormatPartTime
	updated, err := f.cohorts.Update(ctx, created.ID, &models.CohortPatch{Format: &format})
	require.NoError(t, err)

	expected := *created
	expected.Format = models.FormatPartTime
	assert.Equal(t, &expected, updated)

	stored, err := f.cohorts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &expected, stored)
}

func TestCohortUpdateRevalidatesMergedDocument(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)

	empty := ""
	_, err = f.cohorts.Update(ctx, created.ID, &models.CohortPatch{CohortName: &empty})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	stored, err := f.cohorts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Dev 101", stored.CohortName)
}

func TestCohortDoubleDeleteSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)

	require.NoError(t, f.cohorts.Delete(ctx, created.ID))
	require.NoError(t, f.cohorts.Delete(ctx, created.ID))

	_, err = f.cohorts.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrCohortNotFound)
}
