package memory

import (
	"context"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/apperrors"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/validation"
)

// StudentRepository stores students in memory
type StudentRepository struct {
	students *collection[models.Student]
}

// NewStudentRepository creates an empty in-memory student store
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: newCollection(cloneStudent)}
}

func cloneStudent(s *models.Student) *models.Student {
	out := *s
	if s.Languages != nil {
		out.Languages = append([]string{}, s.Languages...)
	}
	if s.Projects != nil {
		out.Projects = append([]string{}, s.Projects...)
	}
	if s.CohortID != nil {
		ref := *s.CohortID
		out.CohortID = &ref
	}
	return &out
}

func (r *StudentRepository) ValidID(id string) bool { return validID(id) }

// validateStudent checks the schema and the shape of the cohort reference,
// rewriting the reference to its canonical form. Whether the referenced cohort
// exists is not checked.
func validateStudent(s *models.Student) error {
	if err := validation.Struct(s); err != nil {
		return err
	}
	if !s.HasCohort() {
		return nil
	}
	ref, ok := canonicalID(*s.CohortID)
	if !ok {
		return apperrors.NewValidationError("cohort", "cohort must be a valid id")
	}
	s.CohortID = &ref
	return nil
}

func (r *StudentRepository) Create(_ context.Context, student *models.Student) (*models.Student, error) {
	doc := cloneStudent(student)
	if err := validateStudent(doc); err != nil {
		return nil, err
	}
	doc.ID = newID()
	r.students.insert(doc.ID, doc)
	return cloneStudent(doc), nil
}

func (r *StudentRepository) GetByID(_ context.Context, id string) (*models.Student, error) {
	return r.students.get(id), nil
}

func (r *StudentRepository) GetAll(_ context.Context) ([]*models.Student, error) {
	return r.students.all(), nil
}

func (r *StudentRepository) Update(_ context.Context, id string, patch *models.StudentPatch) (*models.Student, error) {
	return r.students.modify(id, func(s *models.Student) error {
		patch.Apply(s)
		return validateStudent(s)
	})
}

func (r *StudentRepository) Delete(_ context.Context, id string) error {
	r.students.remove(id)
	return nil
}
