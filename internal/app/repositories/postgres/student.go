package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/db"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

var studentColumns = []string{
	"id::text", "first_name", "last_name", "email", "phone", "linkedin_url",
	"languages", "program", "background", "image", "projects", "cohort_id::text",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	var program string
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.LinkedinURL,
		&s.Languages, &program, &s.Background, &s.Image, &s.Projects, &s.CohortID)
	if err != nil {
		return nil, err
	}
	s.Program = models.Program(program)
	s.Languages = nonNil(s.Languages)
	s.Projects = nonNil(s.Projects)
	return s, nil
}

func studentValues(s *models.Student) map[string]interface{} {
	var cohortID interface{}
	if s.HasCohort() {
		cohortID = uuid.MustParse(*s.CohortID)
	}
	return map[string]interface{}{
		"first_name":   s.FirstName,
		"last_name":    s.LastName,
		"email":        s.Email,
		"phone":        s.Phone,
		"linkedin_url": s.LinkedinURL,
		"languages":    nonNil(s.Languages),
		"program":      string(s.Program),
		"background":   s.Background,
		"image":        s.Image,
		"projects":     nonNil(s.Projects),
		"cohort_id":    cohortID,
	}
}

// validateStudent checks the schema; the cohort reference must be a UUID but
// is not required to exist.
func validateStudent(s *models.Student) error {
	if err := validation.Struct(s); err != nil {
		return err
	}
	if s.HasCohort() && !ValidUUID(*s.CohortID) {
		return apperrors.NewValidationError("cohort", "cohort must be a valid UUID")
	}
	return nil
}

// ValidID reports whether id is a UUID
func (r *StudentRepository) ValidID(id string) bool {
	return ValidUUID(id)
}

// Create validates and inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := validateStudent(student); err != nil {
		return nil, err
	}

	values := studentValues(student)
	values["id"] = uuid.New()
	sql, args, err := r.sb.Insert("students").
		SetMap(values).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanStudent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}
	return created, nil
}

// GetByID retrieves a student by ID, nil when absent
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.getByID(ctx, r.db.Pool, id, false)
}

func (r *StudentRepository) getByID(ctx context.Context, q querier, id string, forUpdate bool) (*models.Student, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	builder := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": uid}).
		Limit(1)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return student, nil
}

// GetAll retrieves all students in insertion order
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").OrderBy("seq ASC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Update merges patch into the stored student inside a transaction
func (r *StudentRepository) Update(ctx context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	var updated *models.Student
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		current, err := r.getByID(ctx, tx, id, true)
		if err != nil || current == nil {
			return err
		}

		patch.Apply(current)
		if err := validateStudent(current); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("students").
			SetMap(studentValues(current)).
			Where(squirrel.Eq{"id": uuid.MustParse(id)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("studentID", id).Msg("Error executing update student query")
			return fmt.Errorf("error updating student: %w", err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a student; absent ids are not an error
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": uid}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}
	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
