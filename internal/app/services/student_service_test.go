package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

func TestStudentResolvedCohortEqualsStoredCohort(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cohort, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)

	created, err := f.students.Create(ctx, &models.Student{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Languages: []string{"English", "French"},
		CohortID:  strPtr(cohort.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, cohort.ID, *created.CohortID, "create returns the raw reference")

	got, err := f.students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Cohort)

	stored, err := f.cohorts.GetByID(ctx, cohort.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got.Cohort)
	assert.Equal(t, []string{"English", "French"}, got.Languages)
}

func TestStudentWithoutCohortResolvesToNull(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.students.Create(ctx, &models.Student{FirstName: "Grace"})
	require.NoError(t, err)

	got, err := f.students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Cohort)
	assert.Zero(t, f.cohortRepo.batches.Load(), "no reference means no cohort lookup")
}

func TestStudentDanglingReferenceResolvesToNull(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cohort, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)
	created, err := f.students.Create(ctx, &models.Student{FirstName: "Ada", CohortID: strPtr(cohort.ID)})
	require.NoError(t, err)

	require.NoError(t, f.cohorts.Delete(ctx, cohort.ID))

	got, err := f.students.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Cohort)

	all, err := f.students.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Cohort)
}

func TestStudentGetAllBatchesCohortLookups(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)
	b, err := f.cohorts.Create(ctx, &models.Cohort{CohortName: "UX 1", Program: models.ProgramUXUI, Format: models.FormatPartTime})
	require.NoError(t, err)

	for _, ref := range []string{a.ID, b.ID, a.ID} {
		_, err := f.students.Create(ctx, &models.Student{FirstName: "S", CohortID: strPtr(ref)})
		require.NoError(t, err)
	}
	_, err = f.students.Create(ctx, &models.Student{FirstName: "Solo"})
	require.NoError(t, err)

	all, err := f.students.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.EqualValues(t, 1, f.cohortRepo.batches.Load())
	assert.Equal(t, a.ID, all[0].Cohort.ID)
	assert.Equal(t, b.ID, all[1].Cohort.ID)
	assert.Equal(t, a.ID, all[2].Cohort.ID)
	assert.Nil(t, all[3].Cohort)
	assert.Equal(t, "Solo", all[3].FirstName)
}

func TestStudentMalformedIDNeverReachesStorage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.students.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	_, err = f.students.Update(ctx, "not-an-id", &models.StudentPatch{FirstName: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	assert.ErrorIs(t, f.students.Delete(ctx, "not-an-id"), apperrors.ErrInvalidID)

	assert.Zero(t, f.studentRepo.calls.Load())
	assert.Zero(t, f.cohortRepo.calls.Load())
}

func TestStudentValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.students.Create(ctx, &models.Student{LastName: "NoFirstName"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.students.Create(ctx, &models.Student{FirstName: "Ada", Email: "not-an-email"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.students.Create(ctx, &models.Student{FirstName: "Ada", Program: "Basket Weaving"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.students.Create(ctx, &models.Student{FirstName: "Ada", CohortID: strPtr("42")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestStudentPartialUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cohort, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)
	created, err := f.students.Create(ctx, &models.Student{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Projects:  []string{"Engine"},
		CohortID:  strPtr(cohort.ID),
	})
	require.NoError(t, err)

	updated, err := f.students.Update(ctx, created.ID, &models.StudentPatch{LastName: strPtr("Lovelace")})
	require.NoError(t, err)

	expected := *created
	expected.LastName = "Lovelace"
	assert.Equal(t, &expected, updated)

	cleared, err := f.students.Update(ctx, created.ID, &models.StudentPatch{CohortID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.CohortID)

	_, err = f.students.Update(ctx, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", &models.StudentPatch{})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentDoubleDeleteSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.students.Create(ctx, &models.Student{FirstName: "Ada"})
	require.NoError(t, err)

	require.NoError(t, f.students.Delete(ctx, created.ID))
	require.NoError(t, f.students.Delete(ctx, created.ID))

	_, err = f.students.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentUppercaseReferenceResolvesCohort(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cohort, err := f.cohorts.Create(ctx, webDev101())
	require.NoError(t, err)

	created, err := f.students.Create(ctx, &models.Student{
		FirstName: "Ada",
		CohortID:  strPtr(strings.ToUpper(cohort.ID)),
	})
	require.NoError(t, err)

	got, err := f.students.GetByID(ctx, strings.ToUpper(created.ID))
	require.NoError(t, err)
	require.NotNil(t, got.Cohort)
	assert.Equal(t, cohort.ID, got.Cohort.ID)

	byUpper, err := f.cohorts.GetByID(ctx, strings.ToUpper(cohort.ID))
	require.NoError(t, err)
	assert.Equal(t, cohort.ID, byUpper.ID)
}
