package services

import (
	"context"

	"fixuBack/internal/fsm"
	"fixuBack/internal/models"
	"fixuBack/internal/repositories"
)

type OfferService struct {
	OfferRepo *repositories.OfferRepository
	ItemRepo  *repositories.ItemRepository
}

// CreateOffer places a pending bid on an item. Items that have moved past
// the bidding stage no longer accept offers.
func (s *OfferService) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	if offer.BidPrice <= 0 {
		return models.Offer{}, models.ErrInvalidBidPrice
	}

	item, err := s.ItemRepo.GetItemByID(ctx, offer.ItemID)
	if err != nil {
		return models.Offer{}, err
	}
	if !fsm.ItemAcceptsOffers(item.Status) {
		return models.Offer{}, models.ErrItemNotAcceptingOffers
	}

	return s.OfferRepo.CreateOffer(ctx, offer)
}

func (s *OfferService) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	return s.OfferRepo.GetOfferByID(ctx, id)
}

func (s *OfferService) GetOffersByItemID(ctx context.Context, itemID int) ([]models.Offer, error) {
	return s.OfferRepo.GetOffersByItemID(ctx, itemID)
}

// AcceptOffer resolves the bidding on an item: the target offer wins and all
// sibling pending offers are rejected atomically. The job for the accepted
// engagement is created by a separate explicit call.
func (s *OfferService) AcceptOffer(ctx context.Context, id int) (models.Offer, error) {
	return s.OfferRepo.AcceptOffer(ctx, id)
}

// RejectOffer declines a pending offer. A stale call against an already
// resolved offer is a silent no-op: bidding is a multi-actor race and
// discarding a late action is safer than failing an unrelated client.
func (s *OfferService) RejectOffer(ctx context.Context, id int) (models.Offer, error) {
	return s.OfferRepo.ResolveIfPending(ctx, id, fsm.OfferRejected)
}

// CancelOffer withdraws a pending offer on behalf of its fixer. No-op when
// the offer is already resolved.
func (s *OfferService) CancelOffer(ctx context.Context, id int) (models.Offer, error) {
	return s.OfferRepo.ResolveIfPending(ctx, id, fsm.OfferWithdrawn)
}
