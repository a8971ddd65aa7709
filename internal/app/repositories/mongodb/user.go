package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/dberrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// UserRepository handles user documents
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

// ValidID reports whether id is an ObjectID
func (r *UserRepository) ValidID(id string) bool {
	return ValidObjectID(id)
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validation.Struct(user); err != nil {
		return nil, err
	}

	doc := &userDocument{
		ID:        primitive.NewObjectID(),
		Email:     strings.ToLower(user.Email),
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailTaken
		}
		logger.Error().Err(err).Str("email", doc.Email).Msg("Error inserting user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return doc.toModel(), nil
}

// GetByID retrieves a user by ID, nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByEmail retrieves a user by email, nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error finding user")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return doc.toModel(), nil
}
