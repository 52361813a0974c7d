package repository

import (
	"dormhub/internal/httpapi/models"

	"gorm.io/gorm"
)

type UniversityRepository interface {
	Create(university *models.University) error
	FindByID(id int64) (*models.University, error)
	List() ([]models.University, error)
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) Create(university *models.University) error {
	return r.db.Create(university).Error
}

func (r *universityRepository) FindByID(id int64) (*models.University, error) {
	var university models.University
	if err := r.db.First(&university, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &university, nil
}

func (r *universityRepository) List() ([]models.University, error) {
	var universities []models.University
	if err := r.db.Order("created_at DESC").Find(&universities).Error; err != nil {
		return nil, err
	}
	return universities, nil
}
