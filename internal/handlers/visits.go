package handlers

//go:generate mockgen -source=visits.go -destination=mock_visits_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// VisitRecorder records visits.
type VisitRecorder interface {
	Record(ctx context.Context, userID, landmarkID, notes string) (*models.Visit, bool, error)
}

// RecordVisitRequest represents the JSON body for a check-in
// swagger:model RecordVisitRequest
type RecordVisitRequest struct {
	// User ID
	// required: true
	UserID string `json:"user_id"`

	// Landmark ID
	// required: true
	LandmarkID string `json:"landmark_id"`

	// Free-form notes
	// default:
	Notes string `json:"notes"`
}

// VisitResponse represents a recorded visit. Message is set only when the
// visit already existed.
// swagger:model VisitResponse
type VisitResponse struct {
	// default: Already recorded
	Message string        `json:"message,omitempty"`
	Visit   *models.Visit `json:"visit"`
}

// NewRecordVisitHandler returns an HTTP handler recording a check-in.
// @Summary Record visit
// @Description Records a visit of a user to a landmark. Repeating a pair returns the existing visit with 200.
// @Tags visits
// @Accept json
// @Produce json
// @Param recordVisitRequest body handlers.RecordVisitRequest true "Visit request"
// @Success 201 {object} handlers.VisitResponse "Visit recorded"
// @Success 200 {object} handlers.VisitResponse "Already recorded"
// @Failure 400 {object} handlers.ErrorResponse "user_id and landmark_id required"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /visits [post]
func NewRecordVisitHandler(svc VisitRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "user_id and landmark_id required")
			return
		}

		visit, created, err := svc.Record(r.Context(), req.UserID, req.LandmarkID, req.Notes)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if !created {
			writeJSON(w, http.StatusOK, VisitResponse{Message: "Already recorded", Visit: visit})
			return
		}
		writeJSON(w, http.StatusCreated, VisitResponse{Visit: visit})
	}
}
