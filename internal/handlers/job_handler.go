package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fixuBack/internal/models"
	"fixuBack/internal/services"
)

// JobHandler handles HTTP requests for repair jobs.
type JobHandler struct {
	Service *services.JobService
}

func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var job models.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Duplicate concurrent engagements between the same pair are refused.
	active, err := h.Service.HasActiveEngagement(r.Context(), job.FixerID, job.ClientID)
	if err != nil {
		http.Error(w, "failed to check engagements", http.StatusInternalServerError)
		return
	}
	if active {
		http.Error(w, "active engagement already exists for this pair", http.StatusConflict)
		return
	}

	created, err := h.Service.CreateJob(r.Context(), job)
	if err != nil {
		if errors.Is(err, models.ErrInvalidAgreedPrice) {
			http.Error(w, "agreed price must be positive", http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to create job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *JobHandler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	job, err := h.Service.GetJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status required", http.StatusBadRequest)
		return
	}

	job, err := h.Service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (h *JobHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	var req struct {
		FixerID string `json:"fixer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FixerID == "" {
		http.Error(w, "fixer_id required", http.StatusBadRequest)
		return
	}

	job, err := h.Service.CompleteJob(r.Context(), id, req.FixerID)
	if err != nil {
		if errors.Is(err, models.ErrJobNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to complete job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (h *JobHandler) HasActiveEngagement(w http.ResponseWriter, r *http.Request) {
	fixerID := r.URL.Query().Get(":fixer_id")
	clientID := r.URL.Query().Get(":client_id")
	if fixerID == "" || clientID == "" {
		http.Error(w, "fixer_id and client_id required", http.StatusBadRequest)
		return
	}

	active, err := h.Service.HasActiveEngagement(r.Context(), fixerID, clientID)
	if err != nil {
		http.Error(w, "failed to check engagements", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"active": active})
}
