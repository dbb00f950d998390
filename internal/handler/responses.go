package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/incomeengine/internal/domain"
	"github.com/osse101/incomeengine/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs an engine error and answers with its mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+": service error", "error", err)
	} else {
		log.Warn(opName+": rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages the caller can act on
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrInstanceNotFound):
		return http.StatusNotFound, ErrMsgInstanceNotFoundError
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, ErrMsgAssetNotFoundError
	case errors.Is(err, domain.ErrActionNotFound):
		return http.StatusNotFound, ErrMsgActionNotFoundError
	case errors.Is(err, domain.ErrUpgradeNotFound):
		return http.StatusNotFound, ErrMsgUpgradeNotFoundError
	case errors.Is(err, domain.ErrNicheNotFound):
		return http.StatusNotFound, ErrMsgNicheNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrUpgradeOwned):
		return http.StatusConflict, ErrMsgUpgradeOwnedError
	case errors.Is(err, domain.ErrUpgradeLocked):
		return http.StatusForbidden, ErrMsgUpgradeLockedError
	case errors.Is(err, domain.ErrUpgradeConflict):
		return http.StatusConflict, ErrMsgUpgradeConflictError
	case errors.Is(err, domain.ErrSlotCapacity):
		return http.StatusConflict, ErrMsgSlotCapacityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
