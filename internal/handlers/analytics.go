package handlers

//go:generate mockgen -source=analytics.go -destination=mock_analytics_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// AnalyticsSummarizer builds the analytics summary.
type AnalyticsSummarizer interface {
	Summary(ctx context.Context) (*models.Analytics, error)
}

// AnalyticsResponse represents the analytics summary
// swagger:model AnalyticsResponse
type AnalyticsResponse struct {
	Analytics *models.Analytics `json:"analytics"`
}

// NewAnalyticsHandler returns an HTTP handler for the analytics summary.
// @Summary Analytics summary
// @Description Totals, image statistics and top 5 landmarks and users by visits
// @Tags analytics
// @Produce json
// @Success 200 {object} handlers.AnalyticsResponse "Analytics"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /analytics [get]
func NewAnalyticsHandler(svc AnalyticsSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AnalyticsResponse{Analytics: summary})
	}
}
