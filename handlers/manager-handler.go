package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"pm-tracker/microservices/tracking-service/models"

	"github.com/gorilla/mux"
)

const managerNotFound = "ProjectManager not found"

// ManagerStore is the persistence surface the handler needs; the
// Mongo-backed ManagerService implements it.
type ManagerStore interface {
	List(ctx context.Context) ([]models.ProjectManager, error)
	GetByID(ctx context.Context, id string) (*models.ProjectManager, error)
	Create(ctx context.Context, in models.ProjectManagerInput) (*models.ProjectManager, error)
	Update(ctx context.Context, id string, patch models.ProjectManagerPatch) (*models.ProjectManager, error)
	Delete(ctx context.Context, id string) error
}

type ManagerHandler struct {
	store ManagerStore
}

func NewManagerHandler(store ManagerStore) *ManagerHandler {
	return &ManagerHandler{store: store}
}

func (h *ManagerHandler) List(w http.ResponseWriter, r *http.Request) {
	managers, err := h.store.List(r.Context())
	if err != nil {
		respondError(w, err, managerNotFound)
		return
	}
	respondData(w, http.StatusOK, managers)
}

func (h *ManagerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	manager, err := h.store.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err, managerNotFound)
		return
	}
	respondData(w, http.StatusOK, manager)
}

func (h *ManagerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.ProjectManagerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	manager, err := h.store.Create(r.Context(), in)
	if err != nil {
		respondError(w, err, managerNotFound)
		return
	}
	respondData(w, http.StatusCreated, manager)
}

func (h *ManagerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectManagerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondBadRequest(w, "Invalid request payload")
		return
	}

	manager, err := h.store.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondError(w, err, managerNotFound)
		return
	}
	respondData(w, http.StatusOK, manager)
}

// Delete removes the manager only. Its Work and Job records are left
// in place under their now-dangling projectManagerId.
func (h *ManagerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err, managerNotFound)
		return
	}
	respondData(w, http.StatusOK, struct{}{})
}
