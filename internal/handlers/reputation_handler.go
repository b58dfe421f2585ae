package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// ReputationHandler handles HTTP requests for user reputation.
type ReputationHandler struct {
	Service *services.ReputationService
}

func (h *ReputationHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	rep, err := h.Service.GetReputation(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to get reputation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func (h *ReputationHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rep, err := h.Service.UpdateRating(r.Context(), userID, req.Rating)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRating) {
			http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update rating", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func (h *ReputationHandler) UpdateVerification(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	var req struct {
		Tier int `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rep, err := h.Service.UpdateVerification(r.Context(), userID, req.Tier)
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			http.Error(w, "unknown verification tier", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to update verification", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}
