package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pm-tracker/microservices/tracking-service/logging"
	"pm-tracker/microservices/tracking-service/models"
)

// envelope is the uniform response wrapper: data on success, error on
// failure, never both.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respond(w, status, envelope{Success: true, Data: data})
}

// respondError maps the error taxonomy onto status codes: validation
// problems are the caller's fault (400), a missing target is 404, a
// failing backend is 500, and a backend known to be down is 503.
// notFoundMsg carries the per-entity "<Entity> not found" message.
func respondError(w http.ResponseWriter, err error, notFoundMsg string) {
	var validationErr *models.ValidationError
	var backendErr *models.BackendError

	switch {
	case errors.Is(err, models.ErrNotFound):
		respond(w, http.StatusNotFound, envelope{Success: false, Error: notFoundMsg})
	case errors.As(err, &validationErr):
		respond(w, http.StatusBadRequest, envelope{Success: false, Error: validationErr.Message})
	case errors.As(err, &backendErr) && backendErr.Unavailable:
		logging.Logger.Errorf("Event ID: BACKEND_UNAVAILABLE, Description: %v", err)
		respond(w, http.StatusServiceUnavailable, envelope{Success: false, Error: "Persistence backend unavailable"})
	default:
		logging.Logger.Errorf("Event ID: BACKEND_ERROR, Description: %v", err)
		respond(w, http.StatusInternalServerError, envelope{Success: false, Error: "Internal server error"})
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respond(w, http.StatusBadRequest, envelope{Success: false, Error: message})
}

func respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_FAILED, Description: Failed to encode response: %v", err)
	}
}
