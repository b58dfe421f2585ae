package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// ProgressionHandler handles HTTP requests for XP, levels and streaks.
type ProgressionHandler struct {
	Service *services.ProgressionService
}

func (h *ProgressionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	progress, err := h.Service.GetProgress(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}

func (h *ProgressionHandler) AddXP(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	var req struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Service.AddXP(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			http.Error(w, "amount must not be negative", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to add xp", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *ProgressionHandler) UpdateLoginStreak(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	streak, err := h.Service.UpdateLoginStreak(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to update streak", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"login_streak": streak})
}

func (h *ProgressionHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.Service.Leaderboard(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
