package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"pm-tracker/microservices/tracking-service/models"

	"github.com/gorilla/mux"
)

const workNotFound = "Work not found"

type WorkStore interface {
	List(ctx context.Context, pmID string) ([]models.Work, error)
	GetByID(ctx context.Context, id string) (*models.Work, error)
	Create(ctx context.Context, in models.WorkInput) (*models.Work, error)
	Update(ctx context.Context, id string, patch models.WorkPatch) (*models.Work, error)
	Delete(ctx context.Context, id string) error
}

type WorkHandler struct {
	store WorkStore
}

func NewWorkHandler(store WorkStore) *WorkHandler {
	return &WorkHandler{store: store}
}

// List supports the optional pmId query parameter; without it, all
// work across all managers is returned.
func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	work, err := h.store.List(r.Context(), r.URL.Query().Get("pmId"))
	if err != nil {
		respondError(w, err, workNotFound)
		return
	}
	respondData(w, http.StatusOK, work)
}

func (h *WorkHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, workNotFound)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.WorkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	item, err := h.store.Create(r.Context(), in)
	if err != nil {
		respondError(w, err, workNotFound)
		return
	}
	respondData(w, http.StatusCreated, item)
}

func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.WorkPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	item, err := h.store.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, err, workNotFound)
		return
	}
	respondData(w, http.StatusOK, item)
}

func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err, workNotFound)
		return
	}
	respondData(w, http.StatusOK, struct{}{})
}
