package models

import (
	"time"

	"github.com/lib/pq"
)

// Residence is a listing tied to one University. AvgOverallRating and
// TotalReviews are cached aggregates over the residence's reviews; they are
// recomputed by the review repository on every submission and must never be
// written from client input.
type Residence struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string         `json:"name" gorm:"not null"`
	Address          string         `json:"address" gorm:"not null"`
	Description      *string        `json:"description,omitempty"`
	UniversityID     int64          `json:"university_id" gorm:"not null;index"`
	ImageURLs        pq.StringArray `json:"image_urls" gorm:"type:text[]"`
	AvgOverallRating float64        `json:"avg_overall_rating" gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews     int64          `json:"total_reviews" gorm:"not null;default:0"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`

	// Association
	University University `json:"university,omitempty" gorm:"foreignKey:UniversityID"`
}

func (Residence) TableName() string {
	return "residences"
}
