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
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// StudentRepository handles student documents
type StudentRepository struct {
	coll *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentCollection)}
}

// ValidID reports whether id is an ObjectID
func (r *StudentRepository) ValidID(id string) bool {
	return ValidObjectID(id)
}

// validateStudent checks the schema; the cohort reference must be castable to
// an ObjectID but is not required to exist.
func validateStudent(s *models.Student) error {
	if err := validation.Struct(s); err != nil {
		return err
	}
	if s.HasCohort() && !ValidObjectID(*s.CohortID) {
		return apperrors.NewValidationError("cohort", "cohort must be a valid ObjectId")
	}
	return nil
}

// Create validates and inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	doc := studentFromModel(student)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Msg("Error inserting student")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return doc.toModel(), nil
}

// GetByID retrieves a student by ID, nil when absent
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc studentDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error finding student")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return doc.toModel(), nil
}

// GetAll retrieves all students in insertion order
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}

	var docs []studentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.Error().Err(err).Msg("Error decoding student documents")
		return nil, fmt.Errorf("error decoding students: %w", err)
	}

	students := make([]*models.Student, 0, len(docs))
	for i := range docs {
		students = append(students, docs[i].toModel())
	}
	return students, nil
}

// Update merges patch into the stored student, re-validates and replaces it
func (r *StudentRepository) Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	patch.Apply(current)
	if err := validateStudent(current); err != nil {
		return nil, err
	}

	doc := studentFromModel(current)
	oid, _ := primitive.ObjectIDFromHex(id)
	doc.ID = oid
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error replacing student")
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}

	return doc.toModel(), nil
}

// Delete removes a student; deleting an absent id is not an error
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
