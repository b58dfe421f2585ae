package services

import (
	"context"

	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
)

type ReviewService struct {
	ReviewRepo        *repositories.ReviewRepository
	ReputationService *ReputationService
}

// CreateReview stores a review for a finished job and folds its rating into
// the target user's reputation. One review per (job, reviewer) pair.
func (s *ReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, models.ErrInvalidRating
	}

	created, err := s.ReviewRepo.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, err
	}

	if _, err := s.ReputationService.UpdateRating(ctx, review.TargetID, review.Rating); err != nil {
		return models.Review{}, err
	}
	return created, nil
}

func (s *ReviewService) GetReviewsByTarget(ctx context.Context, targetID string) ([]models.Review, error) {
	return s.ReviewRepo.GetReviewsByTarget(ctx, targetID)
}
