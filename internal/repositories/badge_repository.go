package repositories

import (
	"context"
	"database/sql"
	"errors"

	"fixuBack/internal/models"
)

type BadgeRepository struct {
	DB *sql.DB
}

func (r *BadgeRepository) HasBadge(ctx context.Context, userID, slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_badges WHERE user_id = $1 AND badge_slug = $2
		)
	`, userID, slug).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BadgeRepository) GetBadge(ctx context.Context, userID, slug string) (models.UserBadge, error) {
	var badge models.UserBadge
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, name, badge_slug, earned_at
		FROM user_badges
		WHERE user_id = $1 AND badge_slug = $2
	`, userID, slug).Scan(&badge.ID, &badge.UserID, &badge.Name, &badge.Slug, &badge.EarnedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserBadge{}, models.ErrBadgeNotFound
	}
	if err != nil {
		return models.UserBadge{}, err
	}
	return badge, nil
}

func (r *BadgeRepository) GetBadgesByUser(ctx context.Context, userID string) ([]models.UserBadge, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, name, badge_slug, earned_at
		FROM user_badges
		WHERE user_id = $1
		ORDER BY earned_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	badges := []models.UserBadge{}
	for rows.Next() {
		var badge models.UserBadge
		if err := rows.Scan(&badge.ID, &badge.UserID, &badge.Name, &badge.Slug, &badge.EarnedAt); err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

// CreateBadge awards a badge at most once per (user, slug) pair: when the
// pair already exists the stored row is returned unchanged.
func (r *BadgeRepository) CreateBadge(ctx context.Context, userID, name, slug string) (models.UserBadge, error) {
	existing, err := r.GetBadge(ctx, userID, slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, models.ErrBadgeNotFound) {
		return models.UserBadge{}, err
	}

	var badge models.UserBadge
	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO user_badges (user_id, name, badge_slug, earned_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, badge_slug) DO NOTHING
		RETURNING id, user_id, name, badge_slug, earned_at
	`, userID, name, slug).Scan(&badge.ID, &badge.UserID, &badge.Name, &badge.Slug, &badge.EarnedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Lost a race with a concurrent award; the existing row wins.
		return r.GetBadge(ctx, userID, slug)
	}
	if err != nil {
		return models.UserBadge{}, err
	}
	return badge, nil
}

func (r *BadgeRepository) DeleteBadge(ctx context.Context, userID, slug string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM user_badges WHERE user_id = $1 AND badge_slug = $2
	`, userID, slug)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrBadgeNotFound
	}
	return nil
}

// ListDistributed pages through every awarded badge, most recent first.
func (r *BadgeRepository) ListDistributed(ctx context.Context, offset, limit int) ([]models.UserBadge, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, name, badge_slug, earned_at
		FROM user_badges
		ORDER BY earned_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	badges := []models.UserBadge{}
	for rows.Next() {
		var badge models.UserBadge
		if err := rows.Scan(&badge.ID, &badge.UserID, &badge.Name, &badge.Slug, &badge.EarnedAt); err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}
