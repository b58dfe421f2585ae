package trust

// Verification tiers, ordered from weakest to strongest.
const (
	TierUnverified = iota
	TierEmailOnly
	TierPhoneVerified
	TierGovIDVerified
	TierProCertified
)

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	// Experience bonus accrues 0.2 points per review, capped at 50 reviews.
	experienceCap     = 50
	experiencePerUnit = 0.2
)

// TODO: product has not defined a bonus for TierProCertified yet; it is
// capped at the gov-id bonus until the rule set is extended.
var tierBonus = map[int]int{
	TierUnverified:    0,
	TierEmailOnly:     5,
	TierPhoneVerified: 15,
	TierGovIDVerified: 30,
	TierProCertified:  30,
}

// Score derives the trust score from the current reputation fields. It is a
// pure function of its inputs and recomputes from scratch on every call, so
// repeated evaluation with unchanged inputs always yields the same result.
func Score(averageRating float64, totalReviews, tier int) int {
	score := baseScore
	score += tierBonus[tier]

	if totalReviews > 0 {
		switch {
		case averageRating >= 4.5:
			score += 20
		case averageRating >= 4.0:
			score += 10
		case averageRating < 3.0:
			score -= 10
		}
	}

	reviews := totalReviews
	if reviews > experienceCap {
		reviews = experienceCap
	}
	score += int(float64(reviews) * experiencePerUnit)

	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}

// AddRating folds one new rating into the running average. The result is
// exact: it matches recomputing the mean over the full review history.
func AddRating(average float64, count int, rating int) (float64, int) {
	total := average * float64(count)
	count++
	return (total + float64(rating)) / float64(count), count
}
