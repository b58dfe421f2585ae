package repositories

import (
	"context"
	"database/sql"

	"fixuBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE job_id = $1 AND reviewer_id = $2`, rev.JobID, rev.ReviewerID).Scan(&count); err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	query := `
INSERT INTO reviews (job_id, reviewer_id, target_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, NOW())
RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		rev.JobID, rev.ReviewerID, rev.TargetID, rev.Rating, rev.Comment,
	).Scan(&rev.ID, &rev.CreatedAt)
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByTarget(ctx context.Context, targetID string) ([]models.Review, error) {
	query := `
		SELECT id, job_id, reviewer_id, target_id, rating, comment, created_at
		FROM reviews
		WHERE target_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.JobID, &rev.ReviewerID, &rev.TargetID,
			&rev.Rating, &rev.Comment, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
