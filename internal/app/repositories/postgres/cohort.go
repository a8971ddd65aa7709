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
	"github.com/cohorttools/cohort-tools-api/internal/pkg/helpers"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

var cohortColumns = []string{
	"id::text", "cohort_slug", "cohort_name", "program", "format", "campus",
	"start_date", "end_date", "in_progress", "program_manager", "lead_teacher", "total_hours",
}

// CohortRepository handles cohort database operations
type CohortRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(database *db.PostgresDB) *CohortRepository {
	return &CohortRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func scanCohort(row pgx.Row) (*models.Cohort, error) {
	c := &models.Cohort{}
	var program, format string
	err := row.Scan(&c.ID, &c.CohortSlug, &c.CohortName, &program, &format, &c.Campus,
		&c.StartDate, &c.EndDate, &c.InProgress, &c.ProgramManager, &c.LeadTeacher, &c.TotalHours)
	if err != nil {
		return nil, err
	}
	c.Program = models.Program(program)
	c.Format = models.Format(format)
	c.StartDate = helpers.UTCMillis(c.StartDate)
	c.EndDate = helpers.UTCMillis(c.EndDate)
	return c, nil
}

func cohortValues(c *models.Cohort) map[string]interface{} {
	return map[string]interface{}{
		"cohort_slug":     c.CohortSlug,
		"cohort_name":     c.CohortName,
		"program":         string(c.Program),
		"format":          string(c.Format),
		"campus":          c.Campus,
		"start_date":      helpers.UTCMillis(c.StartDate),
		"end_date":        helpers.UTCMillis(c.EndDate),
		"in_progress":     c.InProgress,
		"program_manager": c.ProgramManager,
		"lead_teacher":    c.LeadTeacher,
		"total_hours":     c.TotalHours,
	}
}

// ValidID reports whether id is a UUID
func (r *CohortRepository) ValidID(id string) bool {
	return ValidUUID(id)
}

// Create validates and inserts a new cohort
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) (*models.Cohort, error) {
	if err := validation.Struct(cohort); err != nil {
		return nil, err
	}

	values := cohortValues(cohort)
	values["id"] = uuid.New()
	sql, args, err := r.sb.Insert("cohorts").
		SetMap(values).
		Suffix("RETURNING " + joinColumns(cohortColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create cohort SQL")
		return nil, fmt.Errorf("failed to build create cohort query: %w", err)
	}

	created, err := scanCohort(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create cohort query")
		return nil, fmt.Errorf("error creating cohort: %w", err)
	}
	return created, nil
}

// GetByID retrieves a cohort by ID, nil when absent
func (r *CohortRepository) GetByID(ctx context.Context, id string) (*models.Cohort, error) {
	return r.getByID(ctx, r.db.Pool, id, false)
}

func (r *CohortRepository) getByID(ctx context.Context, q querier, id string, forUpdate bool) (*models.Cohort, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	builder := r.sb.Select(cohortColumns...).
		From("cohorts").
		Where(squirrel.Eq{"id": uid}).
		Limit(1)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get cohort by ID SQL")
		return nil, fmt.Errorf("failed to build get cohort query: %w", err)
	}

	cohort, err := scanCohort(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("cohortID", id).Msg("Error scanning cohort row")
		return nil, fmt.Errorf("error getting cohort by ID: %w", err)
	}
	return cohort, nil
}

// GetByIDs retrieves the cohorts among ids
func (r *CohortRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Cohort, error) {
	found := make(map[string]*models.Cohort, len(ids))
	uids := parseUUIDs(ids)
	if len(uids) == 0 {
		return found, nil
	}

	cohorts, err := r.list(ctx, squirrel.Eq{"id": uids})
	if err != nil {
		return nil, err
	}
	for _, c := range cohorts {
		found[c.ID] = c
	}
	return found, nil
}

// GetAll retrieves all cohorts in insertion order
func (r *CohortRepository) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	return r.list(ctx, nil)
}

func (r *CohortRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Cohort, error) {
	builder := r.sb.Select(cohortColumns...).From("cohorts").OrderBy("seq ASC")
	if where != nil {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list cohorts SQL")
		return nil, fmt.Errorf("failed to build list cohorts query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list cohorts query")
		return nil, fmt.Errorf("error querying cohorts: %w", err)
	}
	defer rows.Close()

	cohorts := []*models.Cohort{}
	for rows.Next() {
		c, err := scanCohort(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning cohort row during list")
			return nil, fmt.Errorf("error scanning cohort row: %w", err)
		}
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating cohort rows")
		return nil, fmt.Errorf("error iterating cohort rows: %w", err)
	}
	return cohorts, nil
}

// Update merges patch into the stored cohort inside a transaction
func (r *CohortRepository) Update(ctx context.Context, id string, patch *models.CohortPatch) (*models.Cohort, error) {
	var updated *models.Cohort
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		current, err := r.getByID(ctx, tx, id, true)
		if err != nil || current == nil {
			return err
		}

		patch.Apply(current)
		if err := validation.Struct(current); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("cohorts").
			SetMap(cohortValues(current)).
			Where(squirrel.Eq{"id": uuid.MustParse(id)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update cohort query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("cohortID", id).Msg("Error executing update cohort query")
			return fmt.Errorf("error updating cohort: %w", err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a cohort; absent ids are not an error
func (r *CohortRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	sql, args, err := r.sb.Delete("cohorts").Where(squirrel.Eq{"id": uid}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete cohort query: %w", err)
	}
	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("cohortID", id).Msg("Error executing delete cohort query")
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	return nil
}

// Count returns the number of cohorts
func (r *CohortRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("cohorts").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count cohorts query: %w", err)
	}
	var n int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting cohorts: %w", err)
	}
	return n, nil
}
