package dto

// CreateUniversityRequest: payload for adding a university to the directory
type CreateUniversityRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}
