package dto

import "github.com/cohorttools/cohort-tools-api/internal/app/models"

// StudentResponse is a student as returned by the read endpoints, with the
// cohort reference replaced by the cohort document (null when absent or dangling).
type StudentResponse struct {
	ID          string         `json:"_id" example:"66f1c2a4e13b2a0012ab34ce"`
	FirstName   string         `json:"firstName" example:"Ada"`
	LastName    string         `json:"lastName" example:"Lovelace"`
	Email       string         `json:"email" example:"ada@example.com"`
	Phone       string         `json:"phone" example:"+34 600 000 000"`
	LinkedinURL string         `json:"linkedinUrl" example:"https://linkedin.com/in/ada"`
	Languages   []string       `json:"languages"`
	Program     models.Program `json:"program" example:"Web Dev"`
	Background  string         `json:"background" example:"Mathematics"`
	Image       string         `json:"image" example:"https://i.imgur.com/r8bo8u7.png"`
	Projects    []string       `json:"projects"`
	Cohort      *models.Cohort `json:"cohort"`
}

// NewStudentResponse copies s and attaches the resolved cohort
func NewStudentResponse(s *models.Student, cohort *models.Cohort) *StudentResponse {
	return &StudentResponse{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		Phone:       s.Phone,
		LinkedinURL: s.LinkedinURL,
		Languages:   nonNil(s.Languages),
		Program:     s.Program,
		Background:  s.Background,
		Image:       s.Image,
		Projects:    nonNil(s.Projects),
		Cohort:      cohort,
	}
}

func nonNil(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
