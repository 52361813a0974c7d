package dto

import (
	"time"

	"dormhub/internal/httpapi/models"
)

// SubmitReviewRequest: payload for submitting a review. OverallRating is
// validated in the service so an absent value (decoded as 0) gets the same
// out-of-range rejection as an explicit 0.
type SubmitReviewRequest struct {
	OverallRating          int     `json:"overall_rating"`
	CleanlinessRating      *int    `json:"cleanliness_rating,omitempty"`
	SafetyRating           *int    `json:"safety_rating,omitempty"`
	FacilitiesRating       *int    `json:"facilities_rating,omitempty"`
	ManagementRating       *int    `json:"management_rating,omitempty"`
	SocialAtmosphereRating *int    `json:"social_atmosphere_rating,omitempty"`
	ValueRating            *int    `json:"value_rating,omitempty"`
	Comment                *string `json:"comment,omitempty"`
}

// ReviewResponse: one review joined with the submitting user's email only;
// no other user fields are exposed.
type ReviewResponse struct {
	ID                     int64     `json:"id"`
	ResidenceID            int64     `json:"residence_id"`
	UserEmail              string    `json:"user_email"`
	OverallRating          int       `json:"overall_rating"`
	CleanlinessRating      *int      `json:"cleanliness_rating,omitempty"`
	SafetyRating           *int      `json:"safety_rating,omitempty"`
	FacilitiesRating       *int      `json:"facilities_rating,omitempty"`
	ManagementRating       *int      `json:"management_rating,omitempty"`
	SocialAtmosphereRating *int      `json:"social_atmosphere_rating,omitempty"`
	ValueRating            *int      `json:"value_rating,omitempty"`
	Comment                *string   `json:"comment,omitempty"`
	IsApproved             bool      `json:"is_approved"`
	CreatedAt              time.Time `json:"created_at"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:                     review.ID,
		ResidenceID:            review.ResidenceID,
		UserEmail:              review.User.Email,
		OverallRating:          review.OverallRating,
		CleanlinessRating:      review.CleanlinessRating,
		SafetyRating:           review.SafetyRating,
		FacilitiesRating:       review.FacilitiesRating,
		ManagementRating:       review.ManagementRating,
		SocialAtmosphereRating: review.SocialAtmosphereRating,
		ValueRating:            review.ValueRating,
		Comment:                review.Comment,
		IsApproved:             review.IsApproved,
		CreatedAt:              review.CreatedAt,
	}
}

// UpdatedResidence: aggregate snapshot returned alongside a created review
type UpdatedResidence struct {
	ID               int64   `json:"id"`
	AvgOverallRating float64 `json:"avg_overall_rating"`
	TotalReviews     int64   `json:"total_reviews"`
}

// ResidenceReviews: a residence together with all of its reviews
type ResidenceReviews struct {
	Residence *models.Residence `json:"residence"`
	Reviews   []ReviewResponse  `json:"reviews"`
}
