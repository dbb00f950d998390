package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessChecker reports whether the engine can serve traffic
type ReadinessChecker interface {
	Ready() error
}

// ReadinessFunc adapts a function to ReadinessChecker
type ReadinessFunc func() error

// Ready implements ReadinessChecker
func (f ReadinessFunc) Ready() error { return f() }

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the checker passes
func HandleReadyz(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.Ready(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusNotReady,
				Message: err.Error(),
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
