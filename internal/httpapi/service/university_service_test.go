package service

import (
	"testing"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestCreateUniversity_Success(t *testing.T) {
	universityRepo := new(MockUniversityRepository)
	svc := NewUniversityService(universityRepo)

	universityRepo.On("Create", mock.AnythingOfType("*models.University")).Return(nil)

	university, err := svc.Create(dto.CreateUniversityRequest{
		Name:    "State University",
		City:    "Springfield",
		Country: "USA",
	})

	assert.NoError(t, err)
	assert.Equal(t, "State University", university.Name)
	universityRepo.AssertExpectations(t)
}

func TestCreateUniversity_NameTaken(t *testing.T) {
	universityRepo := new(MockUniversityRepository)
	svc := NewUniversityService(universityRepo)

	universityRepo.On("Create", mock.AnythingOfType("*models.University")).
		Return(gorm.ErrDuplicatedKey)

	university, err := svc.Create(dto.CreateUniversityRequest{Name: "State University"})

	assert.ErrorIs(t, err, ErrUniversityNameTaken)
	assert.Nil(t, university)
}

func TestListUniversities(t *testing.T) {
	universityRepo := new(MockUniversityRepository)
	svc := NewUniversityService(universityRepo)

	universityRepo.On("List").Return([]models.University{
		{ID: 2, Name: "Newer U"},
		{ID: 1, Name: "Older U"},
	}, nil)

	universities, err := svc.List()

	assert.NoError(t, err)
	assert.Len(t, universities, 2)
	assert.Equal(t, "Newer U", universities[0].Name)
}
