package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// OfferHandler handles HTTP requests for price offers.
type OfferHandler struct {
	Service *services.OfferService
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateOffer(r.Context(), offer)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, models.ErrItemNotAcceptingOffers):
			http.Error(w, "item is no longer accepting offers", http.StatusConflict)
		case errors.Is(err, models.ErrInvalidBidPrice):
			http.Error(w, "bid price must be positive", http.StatusBadRequest)
		default:
			http.Error(w, "failed to create offer", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid offer id", http.StatusBadRequest)
		return
	}

	offer, err := h.Service.GetOfferByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOfferNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get offer", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}

func (h *OfferHandler) GetOffersByItemID(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(r.URL.Query().Get(":item_id"))
	if err != nil {
		http.Error(w, "invalid item_id", http.StatusBadRequest)
		return
	}

	offers, err := h.Service.GetOffersByItemID(r.Context(), itemID)
	if err != nil {
		http.Error(w, "failed to get offers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offers)
}

func (h *OfferHandler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid offer id", http.StatusBadRequest)
		return
	}

	offer, err := h.Service.AcceptOffer(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrOfferNotFound):
			http.Error(w, "offer not found", http.StatusNotFound)
		case errors.Is(err, models.ErrInvalidOfferState):
			http.Error(w, "offer is not pending", http.StatusConflict)
		default:
			http.Error(w, "failed to accept offer", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}

func (h *OfferHandler) RejectOffer(w http.ResponseWriter, r *http.Request) {
	h.resolveOffer(w, r, h.Service.RejectOffer)
}

func (h *OfferHandler) CancelOffer(w http.ResponseWriter, r *http.Request) {
	h.resolveOffer(w, r, h.Service.CancelOffer)
}

func (h *OfferHandler) resolveOffer(w http.ResponseWriter, r *http.Request, resolve func(ctx context.Context, id int) (models.Offer, error)) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid offer id", http.StatusBadRequest)
		return
	}

	offer, err := resolve(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrOfferNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update offer", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(offer)
}
