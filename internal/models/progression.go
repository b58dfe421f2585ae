package models

import (
	"time"
)

type UserProgression struct {
	UserID         string     `json:"user_id"`
	CurrentXP      int        `json:"current_xp"`
	CurrentLevel   int        `json:"current_level"`
	LoginStreak    int        `json:"login_streak"`
	LastActionDate *time.Time `json:"last_action_date,omitempty"`
}

// XPResult reports the outcome of a single XP grant.
type XPResult struct {
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
	CurrentXP int  `json:"current_xp"`
}
