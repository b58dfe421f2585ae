package services

import (
	"context"

	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
)

type JobService struct {
	JobRepo *repositories.JobRepository
}

// CreateJob opens the engagement agreed through an accepted offer and moves
// the item to in_progress. Callers are expected to guard duplicate
// engagements with HasActiveEngagement first.
func (s *JobService) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	if job.AgreedPrice <= 0 {
		return models.Job{}, models.ErrInvalidAgreedPrice
	}
	return s.JobRepo.CreateJob(ctx, job)
}

func (s *JobService) GetJobByID(ctx context.Context, id int) (models.Job, error) {
	return s.JobRepo.GetJobByID(ctx, id)
}

// UpdateStatus overwrites the job status without enforcing the transition
// table; validation stays with the caller. fsm.JobCanTransition describes
// the expected moves for callers that want to check.
func (s *JobService) UpdateStatus(ctx context.Context, id int, status string) (models.Job, error) {
	return s.JobRepo.UpdateJobStatus(ctx, id, status)
}

// CompleteJob closes the engagement: job completed, item fixed, and the
// first-fix badge awarded when this is the fixer's first job. The
// repository runs all of it in one unit of work.
func (s *JobService) CompleteJob(ctx context.Context, id int, fixerID string) (models.Job, error) {
	return s.JobRepo.CompleteJob(ctx, id, fixerID)
}

// HasActiveEngagement reports whether the fixer/client pair already has an
// active or disputed job between them.
func (s *JobService) HasActiveEngagement(ctx context.Context, fixerID, clientID string) (bool, error) {
	return s.JobRepo.HasActiveJob(ctx, fixerID, clientID)
}
