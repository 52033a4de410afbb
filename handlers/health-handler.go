package handlers

import (
	"context"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respond(w, http.StatusServiceUnavailable, envelope{Success: false, Error: "Persistence backend unavailable"})
		return
	}
	respondData(w, http.StatusOK, map[string]string{"status": "ok"})
}
