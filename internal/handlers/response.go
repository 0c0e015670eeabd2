package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/middlewares"
	"github.com/sbilibin2017/gt-landmarks/internal/services"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error to its status code and message.
// Unknown errors are reported as 500 with the error text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "Image not found")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrUserFieldsRequired):
		writeError(w, http.StatusBadRequest, "Username and email required")
	case errors.Is(err, services.ErrVisitFieldsRequired):
		writeError(w, http.StatusBadRequest, "user_id and landmark_id required")
	case errors.Is(err, services.ErrInvalidVisitReference):
		writeError(w, http.StatusBadRequest, "Invalid user_id or landmark_id")
	case errors.Is(err, services.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "Email exists")
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
