package services

import (
	"context"
	"errors"
	"testing"

	"fixuBack/internal/models"
)

func TestCreateOffer_RejectsNonPositiveBid(t *testing.T) {
	s := &OfferService{}
	for _, bid := range []float64{0, -10} {
		_, err := s.CreateOffer(context.Background(), models.Offer{ItemID: 1, BidPrice: bid})
		if !errors.Is(err, models.ErrInvalidBidPrice) {
			t.Fatalf("bid %v: expected ErrInvalidBidPrice, got %v", bid, err)
		}
	}
}

func TestCreateJob_RejectsNonPositivePrice(t *testing.T) {
	s := &JobService{}
	for _, price := range []float64{0, -1} {
		_, err := s.CreateJob(context.Background(), models.Job{ItemID: 1, AgreedPrice: price})
		if !errors.Is(err, models.ErrInvalidAgreedPrice) {
			t.Fatalf("price %v: expected ErrInvalidAgreedPrice, got %v", price, err)
		}
	}
}

func TestUpdateRating_RejectsOutOfRangeRating(t *testing.T) {
	s := &ReputationService{}
	for _, rating := range []int{0, 6, -1} {
		_, err := s.UpdateRating(context.Background(), "user-1", rating)
		if !errors.Is(err, models.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestUpdateVerification_RejectsUnknownTier(t *testing.T) {
	s := &ReputationService{}
	for _, tier := range []int{-1, 5} {
		_, err := s.UpdateVerification(context.Background(), "user-1", tier)
		if !errors.Is(err, models.ErrInvalidStatus) {
			t.Fatalf("tier %d: expected ErrInvalidStatus, got %v", tier, err)
		}
	}
}

func TestAddXP_RejectsNegativeAmount(t *testing.T) {
	s := &ProgressionService{}
	_, err := s.AddXP(context.Background(), "user-1", -5)
	if !errors.Is(err, models.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateReview_RejectsOutOfRangeRating(t *testing.T) {
	s := &ReviewService{}
	for _, rating := range []int{0, 6} {
		_, err := s.CreateReview(context.Background(), models.Review{JobID: 1, Rating: rating})
		if !errors.Is(err, models.ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestLeaderboard_NilBoardReturnsEmpty(t *testing.T) {
	s := &ProgressionService{}
	entries, err := s.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
