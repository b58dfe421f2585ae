package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// BadgeHandler handles HTTP requests for achievement badges.
type BadgeHandler struct {
	Service *services.BadgeService
}

func (h *BadgeHandler) GetUserBadges(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	badges, err := h.Service.GetUserBadges(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to get badges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(badges)
}

func (h *BadgeHandler) AwardBadge(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	if userID == "" {
		http.Error(w, "user_id required", http.StatusBadRequest)
		return
	}

	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Slug == "" {
		http.Error(w, "name and slug required", http.StatusBadRequest)
		return
	}

	badge, err := h.Service.AwardBadge(r.Context(), userID, req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to award badge", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(badge)
}

func (h *BadgeHandler) RevokeBadge(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(":user_id")
	slug := r.URL.Query().Get(":slug")
	if userID == "" || slug == "" {
		http.Error(w, "user_id and slug required", http.StatusBadRequest)
		return
	}

	if err := h.Service.RevokeBadge(r.Context(), userID, slug); err != nil {
		if errors.Is(err, models.ErrBadgeNotFound) {
			http.Error(w, "badge not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to revoke badge", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "badge revoked"})
}

func (h *BadgeHandler) ListDistributed(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	badges, err := h.Service.ListDistributed(r.Context(), offset, limit)
	if err != nil {
		http.Error(w, "failed to list badges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(badges)
}
