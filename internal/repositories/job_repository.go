package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fixuBack/internal/fsm"
	"fixuBack/internal/models"
)

type JobRepository struct {
	DB *sql.DB
}

// CreateJob inserts an active job and moves the item to in_progress in the
// same transaction. The item move is unconditional: acceptance of the offer
// already validated the item, so no status check is repeated here.
func (r *JobRepository) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Job{}, err
	}
	defer tx.Rollback()

	query := `
INSERT INTO jobs (item_id, client_id, fixer_id, agreed_price, status, started_at)
VALUES ($1, $2, $3, $4, $5, NOW())
RETURNING id, started_at
	`
	err = tx.QueryRowContext(ctx, query,
		job.ItemID, job.ClientID, job.FixerID, job.AgreedPrice, fsm.JobActive,
	).Scan(&job.ID, &job.StartedAt)
	if err != nil {
		return models.Job{}, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2`, fsm.ItemInProgress, job.ItemID)
	if err != nil {
		return models.Job{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Job{}, err
	}
	job.Status = fsm.JobActive
	return job, nil
}

func (r *JobRepository) GetJobByID(ctx context.Context, id int) (models.Job, error) {
	query := `
		SELECT id, item_id, client_id, fixer_id, agreed_price, status, started_at, completed_at
		FROM jobs
		WHERE id = $1
	`
	var job models.Job
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.ItemID, &job.ClientID, &job.FixerID,
		&job.AgreedPrice, &job.Status, &job.StartedAt, &job.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// UpdateJobStatus overwrites the status without consulting the transition
// table. Callers are trusted to pre-validate; fsm.JobCanTransition is
// available for that.
func (r *JobRepository) UpdateJobStatus(ctx context.Context, id int, status string) (models.Job, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return models.Job{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.Job{}, err
	}
	if rows == 0 {
		return models.Job{}, models.ErrJobNotFound
	}
	return r.GetJobByID(ctx, id)
}

// CompleteJob marks the job completed, moves its item to fixed and, when
// this is the fixer's first job, awards the first-fix badge. All three
// writes share one transaction so a failure rolls everything back. The
// badge insert is guarded by existence, which keeps the award idempotent.
func (r *JobRepository) CompleteJob(ctx context.Context, id int, fixerID string) (models.Job, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Job{}, err
	}
	defer tx.Rollback()

	var job models.Job
	err = tx.QueryRowContext(ctx, `
		SELECT id, item_id, client_id, fixer_id, agreed_price, status, started_at, completed_at
		FROM jobs
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&job.ID, &job.ItemID, &job.ClientID, &job.FixerID,
		&job.AgreedPrice, &job.Status, &job.StartedAt, &job.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, models.ErrJobNotFound
	}
	if err != nil {
		return models.Job{}, err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `UPDATE jobs SET status = $1, completed_at = $2 WHERE id = $3`, fsm.JobCompleted, now, id)
	if err != nil {
		return models.Job{}, err
	}
	_, err = tx.ExecContext(ctx, `UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2`, fsm.ItemFixed, job.ItemID)
	if err != nil {
		return models.Job{}, err
	}

	var jobCount int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE fixer_id = $1`, fixerID).Scan(&jobCount); err != nil {
		return models.Job{}, err
	}
	if jobCount == 1 {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_badges (user_id, name, badge_slug, earned_at)
			SELECT $1, $2, $3, NOW()
			WHERE NOT EXISTS (
				SELECT 1 FROM user_badges WHERE user_id = $1 AND badge_slug = $3
			)
		`, fixerID, "First Fix", "first-fix")
		if err != nil {
			return models.Job{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Job{}, err
	}
	job.Status = fsm.JobCompleted
	job.CompletedAt = &now
	return job, nil
}

// HasActiveJob reports whether the fixer/client pair already has an active
// or disputed engagement.
func (r *JobRepository) HasActiveJob(ctx context.Context, fixerID, clientID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM jobs
			WHERE fixer_id = $1 AND client_id = $2 AND status IN ($3, $4)
		)
	`
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, fixerID, clientID, fsm.JobActive, fsm.JobDisputed).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *JobRepository) CountJobsByFixer(ctx context.Context, fixerID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE fixer_id = $1`, fixerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
