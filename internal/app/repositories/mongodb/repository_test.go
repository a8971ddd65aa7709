package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func namespace(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

// toBSON renders a stored document the way the server would return it
func toBSON(t *testing.T, doc interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var out bson.D
	require.NoError(t, bson.Unmarshal(raw, &out))
	return out
}

func storedCohort(name string) *cohortDocument {
	start := time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)
	return &cohortDocument{
		ID:         primitive.NewObjectID(),
		CohortSlug: "wd-" + name,
		CohortName: name,
		Program:    string(models.ProgramWebDev),
		Format:     string(models.FormatFullTime),
		Campus:     "Madrid",
		StartDate:  &start,
		TotalHours: 360,
	}
}

func findResponse(t *testing.T, mt *mtest.T, collection string, docs ...interface{}) bson.D {
	batch := make([]bson.D, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, toBSON(t, d))
	}
	return mtest.CreateCursorResponse(0, namespace(mt, collection), mtest.FirstBatch, batch...)
}

func TestCohortRepositoryMongo(t *testing.T) {
	mt := newMockT(t)

	mt.Run("create assigns an ObjectID", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		created, err := repo.Create(context.Background(), &models.Cohort{
			CohortName: "Web Dev 101",
			Program:    models.ProgramWebDev,
			Format:     models.FormatFullTime,
		})
		require.NoError(t, err)
		assert.True(t, ValidObjectID(created.ID))
		assert.Equal(t, "Web Dev 101", created.CohortName)
	})

	mt.Run("create validates before touching the server", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)

		_, err := repo.Create(context.Background(), &models.Cohort{CohortName: "No program"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	mt.Run("get by id decodes the document", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		stored := storedCohort("Web Dev 101")
		mt.AddMockResponses(findResponse(t, mt, cohortCollection, stored))

		got, err := repo.GetByID(context.Background(), stored.ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stored.ID.Hex(), got.ID)
		assert.Equal(t, models.ProgramWebDev, got.Program)
		require.NotNil(t, got.StartDate)
		assert.True(t, stored.StartDate.Equal(*got.StartDate))
		assert.Equal(t, time.UTC, got.StartDate.Location())
	})

	mt.Run("get by id maps no documents to nil", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(findResponse(t, mt, cohortCollection))

		got, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	mt.Run("get by id surfaces server errors", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on test",
		}))

		got, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	mt.Run("get by ids keys results by hex id", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		first, second := storedCohort("Web Dev 101"), storedCohort("Data 1")
		mt.AddMockResponses(findResponse(t, mt, cohortCollection, first, second))

		found, err := repo.GetByIDs(context.Background(), []string{first.ID.Hex(), "not-an-id", second.ID.Hex()})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Web Dev 101", found[first.ID.Hex()].CohortName)
		assert.Equal(t, "Data 1", found[second.ID.Hex()].CohortName)
	})

	mt.Run("get by ids skips the query without valid ids", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)

		found, err := repo.GetByIDs(context.Background(), []string{"42", ""})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	mt.Run("get all keeps server order", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(findResponse(t, mt, cohortCollection,
			storedCohort("Web Dev 101"), storedCohort("Web Dev 102"), storedCohort("Web Dev 103")))

		all, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Web Dev 101", all[0].CohortName)
		assert.Equal(t, "Web Dev 103", all[2].CohortName)
	})

	mt.Run("update merges only supplied fields", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		stored := storedCohort("Web Dev 101")
		mt.AddMockResponses(
			findResponse(t, mt, cohortCollection, stored),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		campus := "Paris"
		updated, err := repo.Update(context.Background(), stored.ID.Hex(), &models.CohortPatch{Campus: &campus})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, stored.ID.Hex(), updated.ID)
		assert.Equal(t, "Paris", updated.Campus)
		assert.Equal(t, "Web Dev 101", updated.CohortName)
		assert.Equal(t, 360.0, updated.TotalHours)
	})

	mt.Run("update of a document deleted mid-flight returns nil", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		stored := storedCohort("Web Dev 101")
		mt.AddMockResponses(
			findResponse(t, mt, cohortCollection, stored),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		campus := "Paris"
		updated, err := repo.Update(context.Background(), stored.ID.Hex(), &models.CohortPatch{Campus: &campus})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	mt.Run("update of an absent document returns nil", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(findResponse(t, mt, cohortCollection))

		updated, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), &models.CohortPatch{})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	mt.Run("update rejects an invalid merge without replacing", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		stored := storedCohort("Web Dev 101")
		mt.AddMockResponses(findResponse(t, mt, cohortCollection, stored))

		bad := models.Format("Weekends")
		_, err := repo.Update(context.Background(), stored.ID.Hex(), &models.CohortPatch{Format: &bad})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	mt.Run("delete is idempotent", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		require.NoError(t, repo.Delete(context.Background(), id))
		require.NoError(t, repo.Delete(context.Background(), id))
		require.NoError(t, repo.Delete(context.Background(), "not-an-id"))
	})

	mt.Run("count reads the aggregate result", func(mt *mtest.T) {
		repo := NewCohortRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, cohortCollection), mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(4)}}))

		n, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 4, n)
	})
}

func TestStudentRepositoryMongo(t *testing.T) {
	mt := newMockT(t)

	mt.Run("reference is stored as ObjectID and read back as hex", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		cohortID := primitive.NewObjectID()
		stored := &studentDocument{
			ID:        primitive.NewObjectID(),
			FirstName: "Ada",
			Languages: []string{"English", "French"},
			Cohort:    &cohortID,
		}
		mt.AddMockResponses(findResponse(t, mt, studentCollection, stored))

		got, err := repo.GetByID(context.Background(), stored.ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.CohortID)
		assert.Equal(t, cohortID.Hex(), *got.CohortID)
		assert.Equal(t, []string{"English", "French"}, got.Languages)
		assert.Equal(t, []string{}, got.Projects)
	})

	mt.Run("create rejects a malformed reference", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		bad := "42"

		_, err := repo.Create(context.Background(), &models.Student{FirstName: "Ada", CohortID: &bad})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	mt.Run("create accepts a dangling reference", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		ref := primitive.NewObjectID().Hex()

		created, err := repo.Create(context.Background(), &models.Student{FirstName: "Ada", CohortID: &ref})
		require.NoError(t, err)
		require.NotNil(t, created.CohortID)
		assert.Equal(t, ref, *created.CohortID)
	})

	mt.Run("update clears the reference on explicit null", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		cohortID := primitive.NewObjectID()
		stored := &studentDocument{ID: primitive.NewObjectID(), FirstName: "Ada", LastName: "Lovelace", Cohort: &cohortID}
		mt.AddMockResponses(
			findResponse(t, mt, studentCollection, stored),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		updated, err := repo.Update(context.Background(), stored.ID.Hex(), &models.StudentPatch{ClearCohort: true})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.CohortID)
		assert.Equal(t, "Lovelace", updated.LastName)
	})

	mt.Run("get all returns empty slice for empty collection", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(findResponse(t, mt, studentCollection))

		all, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

func TestUserRepositoryMongo(t *testing.T) {
	mt := newMockT(t)

	mt.Run("duplicate email becomes a validation error", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.users index: email_1",
		}))

		_, err := repo.Create(context.Background(), &models.User{Email: "Admin@Cohort-Tools.dev"})
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		ce, ok := apperrors.AsCustomError(err)
		require.True(t, ok)
		assert.Equal(t, "email", ce.Field)
	})

	mt.Run("get by email finds lowercased address", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		stored := &userDocument{ID: primitive.NewObjectID(), Email: "admin@cohort-tools.dev", Name: "Admin", CreatedAt: time.Now().UTC().Truncate(time.Millisecond)}
		mt.AddMockResponses(findResponse(t, mt, userCollection, stored))

		got, err := repo.GetByEmail(context.Background(), "ADMIN@cohort-tools.dev")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stored.ID.Hex(), got.ID)
	})

	mt.Run("get by id maps no documents to nil", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(findResponse(t, mt, userCollection))

		got, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
