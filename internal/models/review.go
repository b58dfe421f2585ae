package models

import (
	"time"
)

type Review struct {
	ID         int       `json:"id"`
	JobID      int       `json:"job_id"`
	ReviewerID string    `json:"reviewer_id"`
	TargetID   string    `json:"target_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
