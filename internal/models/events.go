package models

// ProgressEvent is pushed to a user's websocket session when gamification
// state changes.
type ProgressEvent struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
	Level  int    `json:"level,omitempty"`
	Badge  string `json:"badge,omitempty"`
}

const (
	EventLevelUp     = "level_up"
	EventBadgeEarned = "badge_earned"
)
