package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/analytics"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// AnalyticsService builds the store-wide summary.
type AnalyticsService struct {
	landmarks LandmarkReader
	users     UserReader
	visits    VisitReader
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(landmarks LandmarkReader, users UserReader, visits VisitReader) *AnalyticsService {
	return &AnalyticsService{
		landmarks: landmarks,
		users:     users,
		visits:    visits,
	}
}

// Summary computes totals, image statistics and the most visited landmarks
// and most active users. Image statistics are present only when landmarks
// exist and rankings only when visits exist.
func (s *AnalyticsService) Summary(ctx context.Context) (*models.Analytics, error) {
	landmarks, err := s.landmarks.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list landmarks", "error", err)
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	visits, err := s.visits.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list visits", "error", err)
		return nil, err
	}

	result := &models.Analytics{
		TotalLandmarks: len(landmarks),
		TotalUsers:     len(users),
		TotalVisits:    len(visits),
	}

	if len(landmarks) > 0 {
		total, avg := analytics.ImageStats(landmarks)
		result.TotalImages = &total
		result.AvgImagesPerLandmark = &avg
	}

	if len(visits) == 0 {
		return result, nil
	}

	names := make(map[uuid.UUID]string, len(landmarks))
	for _, l := range landmarks {
		names[l.ID] = l.Name
	}
	usernames := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	// Ranked keys without a matching record are skipped.
	for _, c := range analytics.Top(visits, analytics.LandmarkKey, analytics.TopN) {
		if name, ok := names[c.Key]; ok {
			result.TopLandmarks = append(result.TopLandmarks, models.RankedLandmark{Name: name, Visits: c.Count})
		}
	}
	for _, c := range analytics.Top(visits, analytics.UserKey, analytics.TopN) {
		if username, ok := usernames[c.Key]; ok {
			result.TopUsers = append(result.TopUsers, models.RankedUser{Username: username, Visits: c.Count})
		}
	}

	return result, nil
}
