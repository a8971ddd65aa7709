package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// CohortRepository handles cohort documents
type CohortRepository struct {
	coll *mongo.Collection
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(db *mongo.Database) *CohortRepository {
	return &CohortRepository{coll: db.Collection(cohortCollection)}
}

// ValidID reports whether id is an ObjectID
func (r *CohortRepository) ValidID(id string) bool {
	return ValidObjectID(id)
}

// Create validates and inserts a new cohort
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) (*models.Cohort, error) {
	if err := validation.Struct(cohort); err != nil {
		return nil, err
	}

	doc := cohortFromModel(cohort)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Msg("Error inserting cohort")
		return nil, fmt.Errorf("error creating cohort: %w", err)
	}

	return doc.toModel(), nil
}

// GetByID retrieves a cohort by ID, nil when absent
func (r *CohortRepository) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc cohortDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Str("cohortID", id).Msg("Error finding cohort")
		return nil, fmt.Errorf("error getting cohort by ID: %w", err)
	}

	return doc.toModel(), nil
}

// GetByIDs retrieves the cohorts whose ids appear in ids
func (r *CohortRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Cohort, error) {
	found := make(map[string]*models.Cohort, len(ids))
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return found, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		logger.Error().Err(err).Int("count", len(oids)).Msg("Error querying cohorts by ids")
		return nil, fmt.Errorf("error querying cohorts: %w", err)
	}

	var docs []cohortDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding cohorts: %w", err)
	}
	for i := range docs {
		c := docs[i].toModel()
		found[c.ID] = c
	}
	return found, nil
}

// GetAll retrieves all cohorts in insertion order
func (r *CohortRepository) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all cohorts query")
		return nil, fmt.Errorf("error querying cohorts: %w", err)
	}

	var docs []cohortDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.Error().Err(err).Msg("Error decoding cohort documents")
		return nil, fmt.Errorf("error decoding cohorts: %w", err)
	}

	cohorts := make([]*models.Cohort, 0, len(docs))
	for i := range docs {
		cohorts = append(cohorts, docs[i].toModel())
	}
	return cohorts, nil
}

// Update merges patch into the stored cohort, re-validates and replaces it.
// Concurrent updates are last-write-wins.
func (r *CohortRepository) Update(ctx context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	patch.Apply(current)
	if err := validation.Struct(current); err != nil {
		return nil, err
	}

	doc := cohortFromModel(current)
	oid, _ := primitive.ObjectIDFromHex(id)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		logger.Error().Err(err).Str("cohortID", id).Msg("Error replacing cohort")
		return nil, fmt.Errorf("error updating cohort: %w", err)
	}
	if res.MatchedCount == 0 {
		// deleted between read and write
		return nil, nil
	}

	return doc.toModel(), nil
}

// Delete removes a cohort; deleting an absent id is not an error
func (r *CohortRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		logger.Error().Err(err).Str("cohortID", id).Msg("Error deleting cohort")
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	return nil
}

// Count returns the number of cohort documents
func (r *CohortRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("error counting cohorts: %w", err)
	}
	return n, nil
}
