package handlers

//go:generate mockgen -source=landmarks.go -destination=mock_landmarks_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// LandmarkLister lists landmarks with derived counters.
type LandmarkLister interface {
	List(ctx context.Context) ([]models.LandmarkView, error)
}

// LandmarkGetter returns a single landmark by id.
type LandmarkGetter interface {
	Get(ctx context.Context, id string) (*models.LandmarkView, error)
}

// VisitorLister lists the visitors of a landmark.
type VisitorLister interface {
	Visitors(ctx context.Context, id string) ([]models.Visitor, error)
}

// LandmarksResponse represents the landmark list
// swagger:model LandmarksResponse
type LandmarksResponse struct {
	Landmarks []models.LandmarkView `json:"landmarks"`
}

// LandmarkResponse represents a single landmark
// swagger:model LandmarkResponse
type LandmarkResponse struct {
	Landmark *models.LandmarkView `json:"landmark"`
}

// VisitorsResponse represents the visitors of a landmark
// swagger:model VisitorsResponse
type VisitorsResponse struct {
	Visitors []models.Visitor `json:"visitors"`
}

// NewListLandmarksHandler returns an HTTP handler listing all landmarks.
// @Summary List landmarks
// @Description Returns every landmark with image_count and visit_count
// @Tags landmarks
// @Produce json
// @Success 200 {object} handlers.LandmarksResponse "Landmarks"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /landmarks [get]
func NewListLandmarksHandler(svc LandmarkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		landmarks, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LandmarksResponse{Landmarks: landmarks})
	}
}

// NewGetLandmarkHandler returns an HTTP handler for a single landmark.
// @Summary Get landmark
// @Description Returns a landmark with image_count and visit_count
// @Tags landmarks
// @Produce json
// @Param id path string true "Landmark ID"
// @Success 200 {object} handlers.LandmarkResponse "Landmark"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /landmarks/{id} [get]
func NewGetLandmarkHandler(svc LandmarkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		landmark, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LandmarkResponse{Landmark: landmark})
	}
}

// NewLandmarkVisitorsHandler returns an HTTP handler listing the visitors of a landmark.
// @Summary List landmark visitors
// @Description Returns the visits of a landmark joined with their users. Unknown ids yield an empty list.
// @Tags landmarks
// @Produce json
// @Param id path string true "Landmark ID"
// @Success 200 {object} handlers.VisitorsResponse "Visitors"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /landmarks/{id}/visitors [get]
func NewLandmarkVisitorsHandler(svc VisitorLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visitors, err := svc.Visitors(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, VisitorsResponse{Visitors: visitors})
	}
}
