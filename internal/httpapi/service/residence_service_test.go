package service

import (
	"testing"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUniversityRepository mocks the UniversityRepository interface
type MockUniversityRepository struct {
	mock.Mock
}

func (m *MockUniversityRepository) Create(university *models.University) error {
	args := m.Called(university)
	return args.Error(0)
}

func (m *MockUniversityRepository) FindByID(id int64) (*models.University, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.University), args.Error(1)
}

func (m *MockUniversityRepository) List() ([]models.University, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.University), args.Error(1)
}

func newResidenceService() (*MockResidenceRepository, *MockUniversityRepository, ResidenceService) {
	residenceRepo := new(MockResidenceRepository)
	universityRepo := new(MockUniversityRepository)
	svc := NewResidenceService(residenceRepo, universityRepo)
	return residenceRepo, universityRepo, svc
}

func TestCreateResidence_UniversityNotFound(t *testing.T) {
	residenceRepo, universityRepo, svc := newResidenceService()

	universityRepo.On("FindByID", int64(5)).Return(nil, gorm.ErrRecordNotFound)

	residence, err := svc.Create(dto.CreateResidenceRequest{
		Name:         "North Hall",
		Address:      "1 Campus Way",
		UniversityID: 5,
	})

	assert.ErrorIs(t, err, ErrUniversityNotFound)
	assert.Nil(t, residence)
	residenceRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateResidence_DefaultsImageURLs(t *testing.T) {
	residenceRepo, universityRepo, svc := newResidenceService()

	universityRepo.On("FindByID", int64(5)).Return(&models.University{ID: 5, Name: "State U"}, nil)
	residenceRepo.On("Create", mock.AnythingOfType("*models.Residence")).Return(nil)
	residenceRepo.On("FindByID", mock.AnythingOfType("int64")).
		Return(&models.Residence{ID: 1, Name: "North Hall", UniversityID: 5}, nil)

	_, err := svc.Create(dto.CreateResidenceRequest{
		Name:         "North Hall",
		Address:      "1 Campus Way",
		UniversityID: 5,
	})
	assert.NoError(t, err)

	created := residenceRepo.Calls[0].Arguments.Get(0).(*models.Residence)
	assert.NotNil(t, created.ImageURLs) // empty list, never null
	assert.Len(t, created.ImageURLs, 0)
	// Aggregates start at zero and are never taken from client input
	assert.Equal(t, 0.0, created.AvgOverallRating)
	assert.Equal(t, int64(0), created.TotalReviews)
}

func TestUpdateResidence_NotFound(t *testing.T) {
	residenceRepo, _, svc := newResidenceService()

	residenceRepo.On("FindByID", int64(9)).Return(nil, gorm.ErrRecordNotFound)

	name := "New Name"
	residence, err := svc.Update(9, dto.UpdateResidenceRequest{Name: &name})

	assert.ErrorIs(t, err, ErrResidenceNotFound)
	assert.Nil(t, residence)
}

func TestUpdateResidence_UnknownUniversity(t *testing.T) {
	residenceRepo, universityRepo, svc := newResidenceService()

	residenceRepo.On("FindByID", int64(1)).Return(&models.Residence{ID: 1, UniversityID: 5}, nil)
	universityRepo.On("FindByID", int64(6)).Return(nil, gorm.ErrRecordNotFound)

	newUniversity := int64(6)
	residence, err := svc.Update(1, dto.UpdateResidenceRequest{UniversityID: &newUniversity})

	assert.ErrorIs(t, err, ErrUniversityNotFound)
	assert.Nil(t, residence)
	residenceRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateResidence_PresenceTaggedPatch(t *testing.T) {
	residenceRepo, _, svc := newResidenceService()

	description := "Old description"
	residenceRepo.On("FindByID", int64(1)).Return(&models.Residence{
		ID:           1,
		Name:         "North Hall",
		Address:      "1 Campus Way",
		Description:  &description,
		UniversityID: 5,
		ImageURLs:    pq.StringArray{"a.jpg"},
	}, nil)
	residenceRepo.On("Update", mock.AnythingOfType("*models.Residence")).Return(nil)

	// Description explicitly cleared to empty; name and address absent
	empty := ""
	_, err := svc.Update(1, dto.UpdateResidenceRequest{Description: &empty})
	assert.NoError(t, err)

	updated := residenceRepo.Calls[1].Arguments.Get(0).(*models.Residence)
	assert.Equal(t, "North Hall", updated.Name)      // absent keeps prior value
	assert.Equal(t, "1 Campus Way", updated.Address) // absent keeps prior value
	assert.Equal(t, "", *updated.Description)        // present empty string clears
	assert.Equal(t, pq.StringArray{"a.jpg"}, updated.ImageURLs)
}

func TestDeleteResidence_NotFound(t *testing.T) {
	residenceRepo, _, svc := newResidenceService()

	residenceRepo.On("Delete", int64(3)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(3)

	assert.ErrorIs(t, err, ErrResidenceNotFound)
}
