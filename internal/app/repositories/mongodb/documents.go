// Package mongodb implements the entity store on MongoDB. Ids are ObjectIDs
// rendered as 24-character hex strings.
package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohorttools/cohort-tools-api/internal/app/models"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/helpers"
)

const (
	cohortCollection  = "cohorts"
	studentCollection = "students"
	userCollection    = "users"
)

type cohortDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CohortSlug     string             `bson:"cohortSlug"`
	CohortName     string             `bson:"cohortName"`
	Program        string             `bson:"program"`
	Format         string             `bson:"format"`
	Campus         string             `bson:"campus"`
	StartDate      *time.Time         `bson:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty"`
	InProgress     bool               `bson:"inProgress"`
	ProgramManager string             `bson:"programManager"`
	LeadTeacher    string             `bson:"leadTeacher"`
	TotalHours     float64            `bson:"totalHours"`
}

type studentDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	FirstName   string              `bson:"firstName"`
	LastName    string              `bson:"lastName"`
	Email       string              `bson:"email"`
	Phone       string              `bson:"phone"`
	LinkedinURL string              `bson:"linkedinUrl"`
	Languages   []string            `bson:"languages"`
	Program     string              `bson:"program"`
	Background  string              `bson:"background"`
	Image       string              `bson:"image"`
	Projects    []string            `bson:"projects"`
	Cohort      *primitive.ObjectID `bson:"cohort,omitempty"`
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ValidObjectID reports whether id is a 24-character hex ObjectID
func ValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// objectIDs converts the well-formed ids and silently drops the rest
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func cohortFromModel(c *models.Cohort) *cohortDocument {
	return &cohortDocument{
		CohortSlug:     c.CohortSlug,
		CohortName:     c.CohortName,
		Program:        string(c.Program),
		Format:         string(c.Format),
		Campus:         c.Campus,
		StartDate:      utcTime(c.StartDate),
		EndDate:        utcTime(c.EndDate),
		InProgress:     c.InProgress,
		ProgramManager: c.ProgramManager,
		LeadTeacher:    c.LeadTeacher,
		TotalHours:     c.TotalHours,
	}
}

func (d *cohortDocument) toModel() *models.Cohort {
	return &models.Cohort{
		ID:             d.ID.Hex(),
		CohortSlug:     d.CohortSlug,
		CohortName:     d.CohortName,
		Program:        models.Program(d.Program),
		Format:         models.Format(d.Format),
		Campus:         d.Campus,
		StartDate:      utcTime(d.StartDate),
		EndDate:        utcTime(d.EndDate),
		InProgress:     d.InProgress,
		ProgramManager: d.ProgramManager,
		LeadTeacher:    d.LeadTeacher,
		TotalHours:     d.TotalHours,
	}
}

// studentFromModel assumes the cohort reference was already checked with ValidObjectID.
func studentFromModel(s *models.Student) *studentDocument {
	doc := &studentDocument{
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       s.Phone,
		LinkedinURL: s.LinkedinURL,
		Languages:   nonNil(s.Languages),
		Program:     string(s.Program),
		Background:  s.Background,
		Image:       s.Image,
		Projects:    nonNil(s.Projects),
	}
	if s.HasCohort() {
		if oid, err := primitive.ObjectIDFromHex(*s.CohortID); err == nil {
			doc.Cohort = &oid
		}
	}
	return doc
}

func (d *studentDocument) toModel() *models.Student {
	s := &models.Student{
		ID:          d.ID.Hex(),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		LinkedinURL: d.LinkedinURL,
		Languages:   nonNil(d.Languages),
		Program:     models.Program(d.Program),
		Background:  d.Background,
		Image:       d.Image,
		Projects:    nonNil(d.Projects),
	}
	if d.Cohort != nil {
		ref := d.Cohort.Hex()
		s.CohortID = &ref
	}
	return s
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

// Mongo stores milliseconds in UTC; normalising here keeps reads equal to writes.
func utcTime(t *time.Time) *time.Time {
	return helpers.UTCMillis(t)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
