package models

// UserReputation is materialized lazily with defaults on first access:
// average 0, zero reviews, trust score 50, unverified tier.
type UserReputation struct {
	UserID           string  `json:"user_id"`
	AverageRating    float64 `json:"average_rating"`
	TotalReviews     int     `json:"total_reviews"`
	TrustScore       int     `json:"trust_score"`
	VerificationTier int     `json:"verification_tier"`
}
