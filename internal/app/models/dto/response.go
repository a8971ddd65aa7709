package dto

// MessageResponse is a plain informational reply
type MessageResponse struct {
	Message string `json:"message" example:"All good in here"`
}

// HealthResponse reports process and storage liveness
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"mongo"`
}
