package models

import "time"

// Review holds one user's rating of a residence. The composite unique index
// on (user_id, residence_id) enforces at most one review per user per
// residence at the database level, backing up the application-side check.
type Review struct {
	ID                     int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID                 string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:user_residence_unique_review"`
	ResidenceID            int64     `json:"residence_id" gorm:"not null;uniqueIndex:user_residence_unique_review"`
	OverallRating          int       `json:"overall_rating" gorm:"not null;check:overall_rating >= 1 AND overall_rating <= 5"`
	CleanlinessRating      *int      `json:"cleanliness_rating,omitempty"`
	SafetyRating           *int      `json:"safety_rating,omitempty"`
	FacilitiesRating       *int      `json:"facilities_rating,omitempty"`
	ManagementRating       *int      `json:"management_rating,omitempty"`
	SocialAtmosphereRating *int      `json:"social_atmosphere_rating,omitempty"`
	ValueRating            *int      `json:"value_rating,omitempty"`
	Comment                *string   `json:"comment,omitempty"`
	IsApproved             bool      `json:"is_approved" gorm:"not null;default:false"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Residence Residence `json:"residence,omitempty" gorm:"foreignKey:ResidenceID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
