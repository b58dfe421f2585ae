package services

import (
	"context"

	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
	"fixuBack/internal/trust"
)

type ReputationService struct {
	ReputationRepo *repositories.ReputationRepository
}

// GetReputation returns the user's reputation, creating the default record
// (trust score 50, unverified) on first access.
func (s *ReputationService) GetReputation(ctx context.Context, userID string) (models.UserReputation, error) {
	return s.ReputationRepo.GetOrCreate(ctx, userID)
}

// UpdateRating folds one review rating into the running average and
// refreshes the trust score.
func (s *ReputationService) UpdateRating(ctx context.Context, userID string, rating int) (models.UserReputation, error) {
	if rating < 1 || rating > 5 {
		return models.UserReputation{}, models.ErrInvalidRating
	}
	return s.ReputationRepo.UpdateRating(ctx, userID, rating)
}

// UpdateVerification overwrites the verification tier and refreshes the
// trust score. Any known tier is accepted, including downgrades.
func (s *ReputationService) UpdateVerification(ctx context.Context, userID string, tier int) (models.UserReputation, error) {
	if tier < trust.TierUnverified || tier > trust.TierProCertified {
		return models.UserReputation{}, models.ErrInvalidStatus
	}
	return s.ReputationRepo.UpdateVerification(ctx, userID, tier)
}
