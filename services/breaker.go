package services

import (
	"errors"
	"time"

	"pm-tracker/microservices/tracking-service/logging"
	"pm-tracker/microservices/tracking-service/models"

	"github.com/sony/gobreaker"
)

// NewStoreBreaker builds the circuit breaker guarding one entity's
// collection. While open, store calls fail fast instead of waiting on
// a backend that is known to be down.
func NewStoreBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}

// backendError classifies a failed store call. NotFound never reaches
// here; the services report it via in-band results so it does not trip
// the breaker.
func backendError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &models.BackendError{Unavailable: true, Err: err}
	}
	return &models.BackendError{Err: err}
}
