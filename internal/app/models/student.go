package models

// Student is a learner. CohortID holds the raw reference; it is only resolved
// into a full Cohort on the read path.
type Student struct {
	ID          string   `json:"_id" example:"66f1c2a4e13b2a0012ab34ce"`
	FirstName   string   `json:"firstName" validate:"required" example:"Ada"`
	LastName    string   `json:"lastName" example:"Lovelace"`
	Email       string   `json:"email" validate:"omitempty,email" example:"ada@example.com"`
	Phone       string   `json:"phone" example:"+34 600 000 000"`
	LinkedinURL string   `json:"linkedinUrl" example:"https://linkedin.com/in/ada"`
	Languages   []string `json:"languages" example:"English,Spanish"`
	Program     Program  `json:"program" validate:"omitempty,oneof='Web Dev' 'UX/UI' 'Data Analytics' 'Cybersecurity'" example:"Web Dev"`
	Background  string   `json:"background" example:"Mathematics"`
	Image       string   `json:"image" example:"https://i.imgur.com/r8bo8u7.png"`
	Projects    []string `json:"projects" example:"Analytical Engine notes"`
	CohortID    *string  `json:"cohort" example:"66f1c2a4e13b2a0012ab34cd"`
}

// HasCohort reports whether the student carries a cohort reference.
func (s *Student) HasCohort() bool {
	return s.CohortID != nil && *s.CohortID != ""
}

// StudentPatch carries the fields of a partial student update.
// Cohort sent as null or as an empty string clears the reference.
type StudentPatch struct {
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	Languages   *[]string `json:"languages,omitempty"`
	Program     *Program  `json:"program,omitempty"`
	Background  *string   `json:"background,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Projects    *[]string `json:"projects,omitempty"`
	CohortID    *string   `json:"cohort,omitempty"`

	ClearCohort bool `json:"-" swaggerignore:"true"`
}

// Apply merges the patch into s.
func (p *StudentPatch) Apply(s *Student) {
	if p == nil || s == nil {
		return
	}
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.LinkedinURL != nil {
		s.LinkedinURL = *p.LinkedinURL
	}
	if p.Languages != nil {
		s.Languages = append([]string(nil), (*p.Languages)...)
	}
	if p.Program != nil {
		s.Program = *p.Program
	}
	if p.Background != nil {
		s.Background = *p.Background
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Projects != nil {
		s.Projects = append([]string(nil), (*p.Projects)...)
	}
	if p.ClearCohort {
		s.CohortID = nil
	}
	if p.CohortID != nil {
		if *p.CohortID == "" {
			s.CohortID = nil
		} else {
			ref := *p.CohortID
			s.CohortID = &ref
		}
	}
}
