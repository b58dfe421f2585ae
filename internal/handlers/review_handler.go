package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// ReviewHandler handles HTTP requests for job reviews.
type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateReview(r.Context(), review)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRating):
			http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		case errors.Is(err, models.ErrAlreadyReviewed):
			http.Error(w, "job already reviewed", http.StatusConflict)
		default:
			http.Error(w, "failed to create review", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByTarget(w http.ResponseWriter, r *http.Request) {
	targetID := r.URL.Query().Get(":user_id")
	if targetID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	reviews, err := h.Service.GetReviewsByTarget(r.Context(), targetID)
	if err != nil {
		http.Error(w, "failed to get reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}
