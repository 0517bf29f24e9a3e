package dto

// SuccessResponse represents a plain confirmation
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports dependency reachability
type HealthResponse struct {
	Status       string          `json:"status" example:"ok"`
	Dependencies map[string]bool `json:"dependencies"`
	StudentCount int64           `json:"studentCount" example:"120"`
}
