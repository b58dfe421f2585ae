package services

import (
	"context"
	"time"

	"fixuBack/internal/gamification"
	"fixuBack/internal/leaderboard"
	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
)

// EventPublisher pushes progress events to connected clients. Delivery is
// best-effort; domain operations never fail on a publish.
type EventPublisher interface {
	Publish(event models.ProgressEvent)
}

type ProgressionService struct {
	ProgressionRepo *repositories.ProgressionRepository
	Board           *leaderboard.Board
	Events          EventPublisher
}

// GetProgress returns the user's progression, creating the default record
// (level 1, zero XP, zero streak) on first access.
func (s *ProgressionService) GetProgress(ctx context.Context, userID string) (models.UserProgression, error) {
	return s.ProgressionRepo.GetOrCreate(ctx, userID)
}

// AddXP grants XP and reports any resulting level-ups. The lifetime
// leaderboard is credited best-effort; a Redis hiccup never fails the grant.
func (s *ProgressionService) AddXP(ctx context.Context, userID string, amount int) (models.XPResult, error) {
	if amount < 0 {
		return models.XPResult{}, models.ErrInvalidStatus
	}
	result, err := s.ProgressionRepo.AddXP(ctx, userID, amount)
	if err != nil {
		return models.XPResult{}, err
	}
	if s.Board != nil {
		_ = s.Board.Add(ctx, userID, amount)
	}
	if result.LeveledUp && s.Events != nil {
		s.Events.Publish(models.ProgressEvent{Type: models.EventLevelUp, UserID: userID, Level: result.NewLevel})
	}
	return result, nil
}

// UpdateLoginStreak records daily activity. Consecutive-day calls extend the
// streak and earn the streak XP bonus; a gap resets the streak to one.
func (s *ProgressionService) UpdateLoginStreak(ctx context.Context, userID string) (int, error) {
	now := time.Now().UTC()
	streak, bonus, err := s.ProgressionRepo.UpdateLoginStreak(ctx, userID, now)
	if err != nil {
		return 0, err
	}
	if bonus && s.Board != nil {
		_ = s.Board.Add(ctx, userID, gamification.StreakBonusXP)
	}
	return streak, nil
}

// Leaderboard returns the top lifetime XP holders.
func (s *ProgressionService) Leaderboard(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if s.Board == nil {
		return []leaderboard.Entry{}, nil
	}
	return s.Board.Top(ctx, limit)
}
