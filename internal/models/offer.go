package models

import (
	"time"
)

type Offer struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	FixerID   string    `json:"fixer_id"`
	BidPrice  float64   `json:"bid_price"`
	Message   *string   `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
