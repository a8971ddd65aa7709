package memory

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

func newCohort(name string) *models.Cohort {
	return &models.Cohort{
		CohortName: name,
		Program:    models.ProgramWebDev,
		Format:     models.FormatFullTime,
		TotalHours: 360,
	}
}

func TestCohortRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewCohortRepository()

	first, err := repo.Create(ctx, newCohort("Web Dev 101"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newCohort("Web Dev 102"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, repo.ValidID(first.ID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Web Dev 101", all[0].CohortName)
	assert.Equal(t, "Web Dev 102", all[1].CohortName)

	found, err := repo.GetByIDs(ctx, []string{first.ID, "missing", second.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	name := "Web Dev 101 (evening)"
	updated, err := repo.Update(ctx, first.ID, &models.CohortPatch{CohortName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.CohortName)
	assert.Equal(t, first.TotalHours, updated.TotalHours)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, first.ID))

	gone, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCohortRepositoryRejectsInvalidMerge(t *testing.T) {
	ctx := context.Background()
	repo := NewCohortRepository()
	created, err := repo.Create(ctx, newCohort("Data 1"))
	require.NoError(t, err)

	bad := models.Format("Weekends")
	_, err = repo.Update(ctx, created.ID, &models.CohortPatch{Format: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FormatFullTime, stored.Format)
}

func TestReturnedDocumentsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()
	created, err := repo.Create(ctx, &models.Student{FirstName: "Ada", Languages: []string{"English"}})
	require.NoError(t, err)

	created.Languages[0] = "Klingon"
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"English"}, stored.Languages)
}

func TestStudentRepositoryCohortReferenceShape(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository()

	bad := "42"
	_, err := repo.Create(ctx, &models.Student{FirstName: "Ada", CohortID: &bad})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "cohort", ce.Field)

	dangling := newID()
	created, err := repo.Create(ctx, &models.Student{FirstName: "Ada", CohortID: &dangling})
	require.NoError(t, err)
	assert.Equal(t, dangling, *created.CohortID)

	missing, err := repo.Update(ctx, newID(), &models.StudentPatch{})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	created, err := repo.Create(ctx, &models.User{Email: "admin@cohort-tools.dev", Name: "Admin"})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByEmail(ctx, "ADMIN@cohort-tools.dev")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.Create(ctx, &models.User{Email: "not-an-email"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = repo.Create(ctx, &models.User{Email: "Admin@Cohort-Tools.dev"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNonCanonicalIDsReachStoredDocuments(t *testing.T) {
	ctx := context.Background()
	cohorts := NewCohortRepository()
	students := NewStudentRepository()

	cohort, err := cohorts.Create(ctx, newCohort("Web Dev 101"))
	require.NoError(t, err)

	upper := strings.ToUpper(cohort.ID)
	braced := "{" + cohort.ID + "}"
	urn := "urn:uuid:" + cohort.ID
	compact := strings.ReplaceAll(cohort.ID, "-", "")

	for _, id := range []string{upper, braced, urn, compact} {
		require.True(t, cohorts.ValidID(id), id)
		got, err := cohorts.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got, id)
		assert.Equal(t, cohort.ID, got.ID)
	}

	found, err := cohorts.GetByIDs(ctx, []string{upper})
	require.NoError(t, err)
	assert.Contains(t, found, cohort.ID)

	student, err := students.Create(ctx, &models.Student{FirstName: "Ada", CohortID: &upper})
	require.NoError(t, err)
	assert.Equal(t, cohort.ID, *student.CohortID)
	assert.Equal(t, strings.ToUpper(cohort.ID), upper, "caller's reference is left untouched")

	updated, err := students.Update(ctx, strings.ToUpper(student.ID), &models.StudentPatch{CohortID: &braced})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, cohort.ID, *updated.CohortID)

	require.NoError(t, cohorts.Delete(ctx, upper))
	gone, err := cohorts.GetByID(ctx, cohort.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRepositoryConcurrentCreateKeepsEmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	const workers = 16
	var created atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, &models.User{Email: "race@example.com"}); err == nil {
				created.Add(1)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())
}
