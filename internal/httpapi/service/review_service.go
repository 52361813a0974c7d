package service

import (
	"errors"

	"dormhub/internal/httpapi/dto"
	"dormhub/internal/httpapi/models"
	"dormhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrRatingOutOfRange = errors.New("overall rating is required and must be between 1 and 5")
	ErrDuplicateReview  = errors.New("review already submitted for this residence")
)

type ReviewService interface {
	SubmitReview(userID string, residenceID int64, req dto.SubmitReviewRequest) (*dto.ReviewResponse, *dto.UpdatedResidence, error)
	ListReviews(residenceID int64) (*dto.ResidenceReviews, error)
}

type reviewService struct {
	reviewRepo    repository.ReviewRepository
	residenceRepo repository.ResidenceRepository
	userRepo      repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	residenceRepo repository.ResidenceRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		residenceRepo: residenceRepo,
		userRepo:      userRepo,
	}
}

func ratingInRange(rating int) bool {
	return rating >= 1 && rating <= 5
}

// SubmitReview validates the ratings, rejects duplicates, and inserts the
// review while recomputing the residence's cached aggregates. Validation
// runs before any row is written. The duplicate check here is point-in-time;
// the unique index on (user_id, residence_id) backs it up under concurrency.
func (s *reviewService) SubmitReview(userID string, residenceID int64, req dto.SubmitReviewRequest) (*dto.ReviewResponse, *dto.UpdatedResidence, error) {
	if !ratingInRange(req.OverallRating) {
		return nil, nil, ErrRatingOutOfRange
	}
	for _, sub := range []*int{
		req.CleanlinessRating,
		req.SafetyRating,
		req.FacilitiesRating,
		req.ManagementRating,
		req.SocialAtmosphereRating,
		req.ValueRating,
	} {
		if sub != nil && !ratingInRange(*sub) {
			return nil, nil, ErrRatingOutOfRange
		}
	}

	if _, err := s.residenceRepo.FindByID(residenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrResidenceNotFound
		}
		return nil, nil, err
	}

	if _, err := s.reviewRepo.FindByUserAndResidence(userID, residenceID); err == nil {
		return nil, nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	review := &models.Review{
		UserID:                 userID,
		ResidenceID:            residenceID,
		OverallRating:          req.OverallRating,
		CleanlinessRating:      req.CleanlinessRating,
		SafetyRating:           req.SafetyRating,
		FacilitiesRating:       req.FacilitiesRating,
		ManagementRating:       req.ManagementRating,
		SocialAtmosphereRating: req.SocialAtmosphereRating,
		ValueRating:            req.ValueRating,
		Comment:                req.Comment,
		IsApproved:             false, // pending admin moderation
	}

	avg, count, err := s.reviewRepo.CreateWithAggregate(review)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, ErrDuplicateReview
		}
		return nil, nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	review.User = *user

	updated := &dto.UpdatedResidence{
		ID:               residenceID,
		AvgOverallRating: avg,
		TotalReviews:     count,
	}

	return dto.FromModelToReviewResponse(review), updated, nil
}

// ListReviews returns the residence together with all of its reviews, newest
// first, each exposing only the submitting user's email.
func (s *reviewService) ListReviews(residenceID int64) (*dto.ResidenceReviews, error) {
	residence, err := s.residenceRepo.FindByID(residenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidenceNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByResidence(residenceID)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&reviews[i]))
	}

	return &dto.ResidenceReviews{
		Residence: residence,
		Reviews:   reviewResponses,
	}, nil
}
