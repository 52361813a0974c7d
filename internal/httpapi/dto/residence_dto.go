package dto

// CreateResidenceRequest: payload for creating a residence listing
type CreateResidenceRequest struct {
	Name         string   `json:"name" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Description  *string  `json:"description,omitempty"`
	UniversityID int64    `json:"university_id" binding:"required"`
	ImageURLs    []string `json:"image_urls,omitempty"`
}

// UpdateResidenceRequest: partial update of a residence. Every field is a
// pointer so presence is explicit: an absent field keeps its prior value,
// while a present empty string or empty list legitimately clears the field.
type UpdateResidenceRequest struct {
	Name         *string   `json:"name,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Description  *string   `json:"description,omitempty"`
	UniversityID *int64    `json:"university_id,omitempty"`
	ImageURLs    *[]string `json:"image_urls,omitempty"`
}
