package trust

import (
	"math"
	"testing"
)

func TestScoreTierBonuses(t *testing.T) {
	cases := []struct {
		name string
		tier int
		want int
	}{
		{"unverified", TierUnverified, 50},
		{"email", TierEmailOnly, 55},
		{"phone", TierPhoneVerified, 65},
		{"gov_id", TierGovIDVerified, 80},
		{"pro_certified capped at gov_id", TierProCertified, 80},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(0, 0, tc.tier)
			if got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestScoreRatingBonusNeedsReviews(t *testing.T) {
	// A 5.0 average with zero reviews must not earn the rating bonus.
	if got := Score(5.0, 0, TierUnverified); got != 50 {
		t.Fatalf("expected 50 got %d", got)
	}
}

func TestScoreRatingBonus(t *testing.T) {
	cases := []struct {
		name    string
		average float64
		reviews int
		want    int
	}{
		{"excellent", 4.5, 1, 70},  // 50 + 20 + 0 exp
		{"good", 4.0, 1, 60},       // 50 + 10 + 0
		{"neutral", 3.5, 1, 50},    // no bonus band
		{"poor", 2.9, 1, 40},        // 50 - 10 + 0
		{"experience", 4.0, 10, 62}, // 50 + 10 + floor(10*0.2)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.average, tc.reviews, TierUnverified)
			if got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestScoreExperienceBonusCap(t *testing.T) {
	// 0.2 per review capped at 50 reviews: max +10 regardless of volume.
	if got := Score(3.5, 50, TierUnverified); got != 60 {
		t.Fatalf("expected 60 got %d", got)
	}
	if got := Score(3.5, 500, TierUnverified); got != 60 {
		t.Fatalf("expected 60 got %d", got)
	}
}

func TestScoreClamped(t *testing.T) {
	high := Score(5.0, 500, TierProCertified)
	if high > 100 {
		t.Fatalf("score above cap: %d", high)
	}
	low := Score(1.0, 1, TierUnverified)
	if low < 0 {
		t.Fatalf("score below floor: %d", low)
	}
}

func TestScoreIdempotent(t *testing.T) {
	first := Score(4.7, 23, TierPhoneVerified)
	second := Score(4.7, 23, TierPhoneVerified)
	if first != second {
		t.Fatalf("recalculation not idempotent: %d vs %d", first, second)
	}
}

func TestAddRatingMatchesFullMean(t *testing.T) {
	ratings := []int{5, 3, 4, 4, 1, 5, 2}

	average := 0.0
	count := 0
	sum := 0
	for _, r := range ratings {
		average, count = AddRating(average, count, r)
		sum += r
	}

	want := float64(sum) / float64(len(ratings))
	if math.Abs(average-want) > 1e-9 {
		t.Fatalf("expected %f got %f", want, average)
	}
	if count != len(ratings) {
		t.Fatalf("expected count %d got %d", len(ratings), count)
	}
}
