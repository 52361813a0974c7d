package service

import (
	"errors"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/models"
	"dormhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrUniversityNameTaken = errors.New("university name already exists")

type UniversityService interface {
	Create(req dto.CreateUniversityRequest) (*models.University, error)
	List() ([]models.University, error)
}

type universityService struct {
	universityRepo repository.UniversityRepository
}

func NewUniversityService(universityRepo repository.UniversityRepository) UniversityService {
	return &universityService{universityRepo: universityRepo}
}

func (s *universityService) Create(req dto.CreateUniversityRequest) (*models.University, error) {
	university := &models.University{
		Name:    req.Name,
		City:    req.City,
		Country: req.Country,
	}

	if err := s.universityRepo.Create(university); err != nil {
		// Unique index on name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUniversityNameTaken
		}
		return nil, err
	}

	return university, nil
}

func (s *universityService) List() ([]models.University, error) {
	return s.universityRepo.List()
}
