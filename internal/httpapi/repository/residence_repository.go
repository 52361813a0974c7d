package repository

import (
	"dormhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ResidenceRepository interface {
	Create(residence *models.Residence) error
	FindByID(id int64) (*models.Residence, error)
	List() ([]models.Residence, error)
	Update(residence *models.Residence) error
	Delete(id int64) error
}

type residenceRepository struct {
	db *gorm.DB
}

func NewResidenceRepository(db *gorm.DB) ResidenceRepository {
	return &residenceRepository{db: db}
}

func (r *residenceRepository) Create(residence *models.Residence) error {
	return r.db.Create(residence).Error
}

// FindByID loads the residence joined with its university.
func (r *residenceRepository) FindByID(id int64) (*models.Residence, error) {
	var residence models.Residence
	if err := r.db.Preload("University").First(&residence, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &residence, nil
}

// List returns all residences joined with their universities, newest first.
func (r *residenceRepository) List() ([]models.Residence, error) {
	var residences []models.Residence
	err := r.db.Preload("University").
		Order("created_at DESC").
		Find(&residences).Error
	if err != nil {
		return nil, err
	}
	return residences, nil
}

// Update persists admin-editable fields. The aggregate columns are omitted:
// only the review repository writes avg_overall_rating and total_reviews, and
// saving values read before a concurrent review submission would revert them.
func (r *residenceRepository) Update(residence *models.Residence) error {
	return r.db.Omit("AvgOverallRating", "TotalReviews", "University").Save(residence).Error
}

// Delete removes the residence row; ON DELETE CASCADE removes its reviews.
func (r *residenceRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&models.Residence{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
