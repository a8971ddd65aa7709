package models

import "time"

// User is the minimal account record looked up by the protected users route
type User struct {
	ID        string    `json:"_id" example:"66f1c2a4e13b2a0012ab34cf"`
	Email     string    `json:"email" validate:"required,email" example:"admin@cohort-tools.dev"`
	Name      string    `json:"name" example:"Admin"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}
