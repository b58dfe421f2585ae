package repositories

import (
	"context"
	"database/sql"
	"errors"

	"fixuBack/internal/models"
	"fixuBack/internal/trust"
)

type ReputationRepository struct {
	DB *sql.DB
}

// GetOrCreate returns the reputation row for a user, materializing it with
// defaults on first access. The insert ignores conflicts so two concurrent
// first reads converge on one row.
func (r *ReputationRepository) GetOrCreate(ctx context.Context, userID string) (models.UserReputation, error) {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_reputation (user_id, average_rating, total_reviews, trust_score, verification_tier)
		VALUES ($1, 0, 0, 50, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, trust.TierUnverified)
	if err != nil {
		return models.UserReputation{}, err
	}
	return r.getByUserID(ctx, userID)
}

func (r *ReputationRepository) getByUserID(ctx context.Context, userID string) (models.UserReputation, error) {
	var rep models.UserReputation
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id, average_rating, total_reviews, trust_score, verification_tier
		FROM user_reputation
		WHERE user_id = $1
	`, userID).Scan(&rep.UserID, &rep.AverageRating, &rep.TotalReviews, &rep.TrustScore, &rep.VerificationTier)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserReputation{}, models.ErrNoRecord
	}
	if err != nil {
		return models.UserReputation{}, err
	}
	return rep, nil
}

// UpdateRating folds a new rating into the running average and recomputes
// the trust score. The row lock serializes concurrent raters so no two
// updates read the same stale count.
func (r *ReputationRepository) UpdateRating(ctx context.Context, userID string, rating int) (models.UserReputation, error) {
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return models.UserReputation{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.UserReputation{}, err
	}
	defer tx.Rollback()

	var rep models.UserReputation
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, average_rating, total_reviews, trust_score, verification_tier
		FROM user_reputation
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&rep.UserID, &rep.AverageRating, &rep.TotalReviews, &rep.TrustScore, &rep.VerificationTier)
	if err != nil {
		return models.UserReputation{}, err
	}

	rep.AverageRating, rep.TotalReviews = trust.AddRating(rep.AverageRating, rep.TotalReviews, rating)
	rep.TrustScore = trust.Score(rep.AverageRating, rep.TotalReviews, rep.VerificationTier)

	_, err = tx.ExecContext(ctx, `
		UPDATE user_reputation
		SET average_rating = $1, total_reviews = $2, trust_score = $3
		WHERE user_id = $4
	`, rep.AverageRating, rep.TotalReviews, rep.TrustScore, userID)
	if err != nil {
		return models.UserReputation{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.UserReputation{}, err
	}
	return rep, nil
}

// UpdateVerification overwrites the verification tier and recomputes the
// trust score. Tier downgrades are accepted; ordering is not enforced here.
func (r *ReputationRepository) UpdateVerification(ctx context.Context, userID string, tier int) (models.UserReputation, error) {
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return models.UserReputation{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.UserReputation{}, err
	}
	defer tx.Rollback()

	var rep models.UserReputation
	err = tx.QueryRowContext(ctx, `
		SELECT user_id, average_rating, total_reviews, trust_score, verification_tier
		FROM user_reputation
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&rep.UserID, &rep.AverageRating, &rep.TotalReviews, &rep.TrustScore, &rep.VerificationTier)
	if err != nil {
		return models.UserReputation{}, err
	}

	rep.VerificationTier = tier
	rep.TrustScore = trust.Score(rep.AverageRating, rep.TotalReviews, tier)

	_, err = tx.ExecContext(ctx, `
		UPDATE user_reputation
		SET verification_tier = $1, trust_score = $2
		WHERE user_id = $3
	`, tier, rep.TrustScore, userID)
	if err != nil {
		return models.UserReputation{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.UserReputation{}, err
	}
	return rep, nil
}
