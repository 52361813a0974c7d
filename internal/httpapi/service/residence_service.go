package service

import (
	"errors"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/models"
	"dormhub/internal/httpapi/repository"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrResidenceNotFound  = errors.New("residence not found")
	ErrUniversityNotFound = errors.New("university not found")
)

type ResidenceService interface {
	Create(req dto.CreateResidenceRequest) (*models.Residence, error)
	List() ([]models.Residence, error)
	GetByID(id int64) (*models.Residence, error)
	Update(id int64, req dto.UpdateResidenceRequest) (*models.Residence, error)
	Delete(id int64) error
}

type residenceService struct {
	residenceRepo  repository.ResidenceRepository
	universityRepo repository.UniversityRepository
}

func NewResidenceService(
	residenceRepo repository.ResidenceRepository,
	universityRepo repository.UniversityRepository,
) ResidenceService {
	return &residenceService{
		residenceRepo:  residenceRepo,
		universityRepo: universityRepo,
	}
}

// Create persists a new listing. Aggregates start at zero and image URLs
// default to an empty list, never null.
func (s *residenceService) Create(req dto.CreateResidenceRequest) (*models.Residence, error) {
	if _, err := s.universityRepo.FindByID(req.UniversityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUniversityNotFound
		}
		return nil, err
	}

	imageURLs := req.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	residence := &models.Residence{
		Name:         req.Name,
		Address:      req.Address,
		Description:  req.Description,
		UniversityID: req.UniversityID,
		ImageURLs:    pq.StringArray(imageURLs),
	}

	if err := s.residenceRepo.Create(residence); err != nil {
		return nil, err
	}

	// Reload joined with the university
	return s.GetByID(residence.ID)
}

func (s *residenceService) List() ([]models.Residence, error) {
	return s.residenceRepo.List()
}

func (s *residenceService) GetByID(id int64) (*models.Residence, error) {
	residence, err := s.residenceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidenceNotFound
		}
		return nil, err
	}
	return residence, nil
}

// Update applies a presence-tagged patch: only fields present in the request
// change, and a present empty value clears the field. The cached aggregates
// are never touched here.
func (s *residenceService) Update(id int64, req dto.UpdateResidenceRequest) (*models.Residence, error) {
	residence, err := s.residenceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidenceNotFound
		}
		return nil, err
	}

	if req.UniversityID != nil {
		if _, err := s.universityRepo.FindByID(*req.UniversityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUniversityNotFound
			}
			return nil, err
		}
		residence.UniversityID = *req.UniversityID
	}
	if req.Name != nil {
		residence.Name = *req.Name
	}
	if req.Address != nil {
		residence.Address = *req.Address
	}
	if req.Description != nil {
		residence.Description = req.Description
	}
	if req.ImageURLs != nil {
		residence.ImageURLs = pq.StringArray(*req.ImageURLs)
	}

	if err := s.residenceRepo.Update(residence); err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

func (s *residenceService) Delete(id int64) error {
	if err := s.residenceRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResidenceNotFound
		}
		return err
	}
	return nil
}
