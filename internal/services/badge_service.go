package services

import (
	"context"

	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
)

type BadgeService struct {
	BadgeRepo *repositories.BadgeRepository
	UserRepo  *repositories.UserRepository
	Events    EventPublisher
}

func (s *BadgeService) HasBadge(ctx context.Context, userID, slug string) (bool, error) {
	return s.BadgeRepo.HasBadge(ctx, userID, slug)
}

func (s *BadgeService) GetUserBadges(ctx context.Context, userID string) ([]models.UserBadge, error) {
	return s.BadgeRepo.GetBadgesByUser(ctx, userID)
}

// AwardBadge grants a named badge to an existing user. Awarding the same
// slug twice returns the stored badge unchanged.
func (s *BadgeService) AwardBadge(ctx context.Context, userID, name, slug string) (models.UserBadge, error) {
	exists, err := s.UserRepo.UserExists(ctx, userID)
	if err != nil {
		return models.UserBadge{}, err
	}
	if !exists {
		return models.UserBadge{}, models.ErrUserNotFound
	}

	already, err := s.BadgeRepo.HasBadge(ctx, userID, slug)
	if err != nil {
		return models.UserBadge{}, err
	}
	badge, err := s.BadgeRepo.CreateBadge(ctx, userID, name, slug)
	if err != nil {
		return models.UserBadge{}, err
	}
	if !already && s.Events != nil {
		s.Events.Publish(models.ProgressEvent{Type: models.EventBadgeEarned, UserID: userID, Badge: slug})
	}
	return badge, nil
}

func (s *BadgeService) RevokeBadge(ctx context.Context, userID, slug string) error {
	return s.BadgeRepo.DeleteBadge(ctx, userID, slug)
}

// ListDistributed pages through every awarded badge across all users,
// newest first.
func (s *BadgeService) ListDistributed(ctx context.Context, offset, limit int) ([]models.UserBadge, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.BadgeRepo.ListDistributed(ctx, offset, limit)
}
