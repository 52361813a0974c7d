package service

import (
	"errors"

	"dormhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	Delete(id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Delete removes a user; the database cascade removes their reviews.
// Residence aggregates are not recomputed afterwards, so cached averages can
// go stale until the residence's next review submission. Known gap,
// documented in DESIGN.md.
func (s *userService) Delete(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
