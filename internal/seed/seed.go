// Package seed loads the bundled sample cohorts and students into an empty store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/cohorttools/cohort-tools-api/internal/app/models"
	appRepos "github.com/cohorttools/cohort-tools-api/internal/app/repositories"
)

var (
	//go:embed data/cohorts.json
	cohortsJSON []byte

	//go:embed data/students.json
	studentsJSON []byte
)

// cohortRecord is a cohort as written in the bundled dataset. Students point at
// cohorts through the numeric legacy id; it is remapped to the stored id.
type cohortRecord struct {
	LegacyID int `json:"legacyId"`
	appModels.Cohort
}

type studentRecord struct {
	CohortLegacyID *int `json:"cohortLegacyId"`
	appModels.Student
}

// Result summarises what a seed run wrote
type Result struct {
	Skipped  bool
	Cohorts  int
	Students int
	User     *appModels.User
}

// Run seeds cohorts and students when the cohort collection is empty and makes
// sure the default user exists.
func Run(ctx context.Context, repos *appRepos.Repositories, adminEmail string, lgr zerolog.Logger) (*Result, error) {
	result := &Result{}
	var finalErr error

	user, err := ensureUser(ctx, repos.UserRepository, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Str("email", adminEmail).Msg("Error creating default user")
		finalErr = errors.Join(finalErr, err)
	}
	result.User = user

	count, err := repos.CohortRepository.Count(ctx)
	if err != nil {
		return result, errors.Join(finalErr, fmt.Errorf("error counting cohorts: %w", err))
	}
	if count > 0 {
		lgr.Info().Int64("cohorts", count).Msg("Store already has cohorts, skipping seed data")
		result.Skipped = true
		return result, finalErr
	}

	var cohorts []cohortRecord
	if err := json.Unmarshal(cohortsJSON, &cohorts); err != nil {
		return result, fmt.Errorf("error parsing bundled cohorts: %w", err)
	}
	var students []studentRecord
	if err := json.Unmarshal(studentsJSON, &students); err != nil {
		return result, fmt.Errorf("error parsing bundled students: %w", err)
	}

	ids := make(map[int]string, len(cohorts))
	for i := range cohorts {
		created, err := repos.CohortRepository.Create(ctx, &cohorts[i].Cohort)
		if err != nil {
			lgr.Error().Err(err).Str("cohortSlug", cohorts[i].CohortSlug).Msg("Error creating seed cohort")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		ids[cohorts[i].LegacyID] = created.ID
		result.Cohorts++
	}

	for i := range students {
		student := &students[i].Student
		student.CohortID = nil
		if ref := students[i].CohortLegacyID; ref != nil {
			if id, ok := ids[*ref]; ok {
				student.CohortID = &id
			}
		}

		if _, err := repos.StudentRepository.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("firstName", student.FirstName).Msg("Error creating seed student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		result.Students++
	}

	lgr.Info().Int("cohorts", result.Cohorts).Int("students", result.Students).Msg("Seed data loaded")
	return result, finalErr
}

func ensureUser(ctx context.Context, users appRepos.UserRepository, email string) (*appModels.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return users.Create(ctx, &appModels.User{Email: email, Name: "Admin"})
}
