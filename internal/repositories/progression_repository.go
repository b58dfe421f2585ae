package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fixuBack/internal/gamification"
	"fixuBack/internal/models"
)

type ProgressionRepository struct {
	DB *sql.DB
}

// GetOrCreate returns the progression row for a user, materializing it with
// defaults (level 1, zero XP, zero streak) on first access.
func (r *ProgressionRepository) GetOrCreate(ctx context.Context, userID string) (models.UserProgression, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_gamification (user_id, current_xp, current_level, login_streak, last_action_date)
		VALUES ($1, 0, 1, 0, NULL)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return models.UserProgression{}, err
	}
	return r.getByUserID(ctx, userID)
}

func (r *ProgressionRepository) getByUserID(ctx context.Context, userID string) (models.UserProgression, error) {
	var progress models.UserProgression
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id, current_xp, current_level, login_streak, last_action_date
		FROM user_gamification
		WHERE user_id = $1
	`, userID).Scan(&progress.UserID, &progress.CurrentXP, &progress.CurrentLevel,
		&progress.LoginStreak, &progress.LastActionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProgression{}, models.ErrNoRecord
	}
	if err != nil {
		return models.UserProgression{}, err
	}
	return progress, nil
}

// AddXP grants XP under a row lock and consumes level thresholds until the
// remainder fits the current level.
func (r *ProgressionRepository) AddXP(ctx context.Context, userID string, amount int) (models.XPResult, error) {
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return models.XPResult{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.XPResult{}, err
	}
	defer tx.Rollback()

	result, err := addXPTx(ctx, tx, userID, amount)
	if err != nil {
		return models.XPResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.XPResult{}, err
	}
	return result, nil
}

func addXPTx(ctx context.Context, tx *sql.Tx, userID string, amount int) (models.XPResult, error) {
	var level, xp int
	err := tx.QueryRowContext(ctx, `
		SELECT current_level, current_xp FROM user_gamification
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&level, &xp)
	if err != nil {
		return models.XPResult{}, err
	}

	level, xp, leveledUp := gamification.ApplyXP(level, xp, amount)

	_, err = tx.ExecContext(ctx, `
		UPDATE user_gamification SET current_level = $1, current_xp = $2
		WHERE user_id = $3
	`, level, xp, userID)
	if err != nil {
		return models.XPResult{}, err
	}
	return models.XPResult{LeveledUp: leveledUp, NewLevel: level, CurrentXP: xp}, nil
}

// UpdateLoginStreak advances the login streak by the UTC calendar-day delta
// since the last action. Extending the streak by exactly one day grants the
// streak XP bonus inside the same transaction. The last-action timestamp is
// always refreshed, including on same-day calls.
func (r *ProgressionRepository) UpdateLoginStreak(ctx context.Context, userID string, now time.Time) (int, bool, error) {
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return 0, false, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer tx.Rollback()

	var streak int
	var lastAction *time.Time
	err = tx.QueryRowContext(ctx, `
		SELECT login_streak, last_action_date FROM user_gamification
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&streak, &lastAction)
	if err != nil {
		return 0, false, err
	}

	now = now.UTC()
	bonus := false
	if lastAction == nil {
		streak = 1
	} else {
		delta := gamification.DayDelta(*lastAction, now)
		streak, bonus = gamification.AdvanceStreak(streak, delta)
		if bonus {
			if _, err := addXPTx(ctx, tx, userID, gamification.StreakBonusXP); err != nil {
				return 0, false, err
			}
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE user_gamification SET login_streak = $1, last_action_date = $2
		WHERE user_id = $3
	`, streak, now, userID)
	if err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return streak, bonus, nil
}
