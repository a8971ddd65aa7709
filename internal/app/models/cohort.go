package models

import "time"

// Cohort is a single bootcamp class. ID is assigned by the store on insert.
type Cohort struct {
	ID             string     `json:"_id" example:"66f1c2a4e13b2a0012ab34cd"`
	CohortSlug     string     `json:"cohortSlug" example:"wd-mad-2024-09"`
	CohortName     string     `json:"cohortName" validate:"required" example:"Web Dev 101"`
	Program        Program    `json:"program" validate:"required,oneof='Web Dev' 'UX/UI' 'Data Analytics' 'Cybersecurity'" example:"Web Dev"`
	Format         Format     `json:"format" validate:"required,oneof='Full Time' 'Part Time'" example:"Full Time"`
	Campus         string     `json:"campus" example:"Madrid"`
	StartDate      *time.Time `json:"startDate,omitempty" example:"2024-09-02T00:00:00Z"`
	EndDate        *time.Time `json:"endDate,omitempty" example:"2024-11-29T00:00:00Z"`
	InProgress     bool       `json:"inProgress" example:"false"`
	ProgramManager string     `json:"programManager" example:"Sally Daher"`
	LeadTeacher    string     `json:"leadTeacher" example:"Florian Aube"`
	TotalHours     float64    `json:"totalHours" validate:"gte=0" example:"360"`
}

// CohortPatch carries the fields of a partial cohort update. Nil means "leave as is".
type CohortPatch struct {
	CohortSlug     *string    `json:"cohortSlug,omitempty"`
	CohortName     *string    `json:"cohortName,omitempty"`
	Program        *Program   `json:"program,omitempty"`
	Format         *Format    `json:"format,omitempty"`
	Campus         *string    `json:"campus,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	InProgress     *bool      `json:"inProgress,omitempty"`
	ProgramManager *string    `json:"programManager,omitempty"`
	LeadTeacher    *string    `json:"leadTeacher,omitempty"`
	TotalHours     *float64   `json:"totalHours,omitempty"`

	// Set when the date was sent as an explicit null
	ClearStartDate bool `json:"-" swaggerignore:"true"`
	ClearEndDate   bool `json:"-" swaggerignore:"true"`
}

// Apply merges the patch into c. The id is never touched.
func (p *CohortPatch) Apply(c *Cohort) {
	if p == nil || c == nil {
		return
	}
	if p.CohortSlug != nil {
		c.CohortSlug = *p.CohortSlug
	}
	if p.CohortName != nil {
		c.CohortName = *p.CohortName
	}
	if p.Program != nil {
		c.Program = *p.Program
	}
	if p.Format != nil {
		c.Format = *p.Format
	}
	if p.Campus != nil {
		c.Campus = *p.Campus
	}
	if p.ClearStartDate {
		c.StartDate = nil
	}
	if p.ClearEndDate {
		c.EndDate = nil
	}
	if p.StartDate != nil {
		start := *p.StartDate
		c.StartDate = &start
	}
	if p.EndDate != nil {
		end := *p.EndDate
		c.EndDate = &end
	}
	if p.InProgress != nil {
		c.InProgress = *p.InProgress
	}
	if p.ProgramManager != nil {
		c.ProgramManager = *p.ProgramManager
	}
	if p.LeadTeacher != nil {
		c.LeadTeacher = *p.LeadTeacher
	}
	if p.TotalHours != nil {
		c.TotalHours = *p.TotalHours
	}
}
