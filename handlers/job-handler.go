package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"pm-tracker/microservices/tracking-service/models"

	"github.com/gorilla/mux"
)

const jobNotFound = "Job not found"

type JobStore interface {
	List(ctx context.Context, pmID string) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, in models.JobInput) (*models.Job, error)
	Update(ctx context.Context, id string, patch models.JobPatch) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobHandler struct {
	store JobStore
}

func NewJobHandler(store JobStore) *JobHandler {
	return &JobHandler{store: store}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.List(r.Context(), r.URL.Query().Get("pmId"))
	if err != nil {
		respondError(w, err, jobNotFound)
		return
	}
	respondData(w, http.StatusOK, jobs)
}

func (h *JobHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.store.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, jobNotFound)
		return
	}
	respondData(w, http.StatusOK, job)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.JobInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	job, err := h.store.Create(r.Context(), in)
	if err != nil {
		respondError(w, err, jobNotFound)
		return
	}
	respondData(w, http.StatusCreated, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.JobPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	job, err := h.store.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, err, jobNotFound)
		return
	}
	respondData(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err, jobNotFound)
		return
	}
	respondData(w, http.StatusOK, struct{}{})
}
