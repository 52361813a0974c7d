package repository

import (
	"dormhub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	FindByUserAndResidence(userID string, residenceID int64) (*models.Review, error)
	ListByResidence(residenceID int64) ([]models.Review, error)
	CreateWithAggregate(review *models.Review) (avg float64, count int64, err error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByUserAndResidence retrieves a user's review for a specific residence
func (r *reviewRepository) FindByUserAndResidence(userID string, residenceID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND residence_id = ?", userID, residenceID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByResidence retrieves all reviews for a residence joined with the
// submitting user, newest first.
func (r *reviewRepository) ListByResidence(residenceID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("residence_id = ?", residenceID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateWithAggregate inserts the review and recomputes the residence's
// cached aggregates in a single transaction. The residence row is locked
// (SELECT ... FOR UPDATE) before the insert, so two concurrent submissions
// for the same residence serialize and cannot double-count; the unique index
// on (user_id, residence_id) rejects the loser of a duplicate race with
// gorm.ErrDuplicatedKey.
//
// The average is recomputed from the full review set rather than maintained
// incrementally; this keeps the cached value drift-free at O(review count)
// per submission.
func (r *reviewRepository) CreateWithAggregate(review *models.Review) (float64, int64, error) {
	var avg float64
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var residence models.Residence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&residence, "id = ?", review.ResidenceID).Error; err != nil {
			return err
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var aggregate struct {
			Average float64
			Total   int64
		}
		err := tx.Model(&models.Review{}).
			Select("COALESCE(ROUND(AVG(overall_rating)::numeric, 2), 0) as average, COUNT(*) as total").
			Where("residence_id = ?", review.ResidenceID).
			Scan(&aggregate).Error
		if err != nil {
			return err
		}

		err = tx.Model(&models.Residence{}).
			Where("id = ?", review.ResidenceID).
			UpdateColumns(map[string]interface{}{
				"avg_overall_rating": aggregate.Average,
				"total_reviews":      aggregate.Total,
			}).Error
		if err != nil {
			return err
		}

		avg = aggregate.Average
		count = aggregate.Total
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return avg, count, nil
}
