package models

import (
	"time"
)

type UserBadge struct {
	ID       int       `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"badge_slug"`
	EarnedAt time.Time `json:"earned_at"`
}
