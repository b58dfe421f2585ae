package models

import (
	"time"
)

type Job struct {
	ID          int        `json:"id"`
	ItemID      int        `json:"item_id"`
	ClientID    string     `json:"client_id"`
	FixerID     string     `json:"fixer_id"`
	AgreedPrice float64    `json:"agreed_price"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
