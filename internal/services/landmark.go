package services

//go:generate mockgen -source=landmark.go -destination=mock_landmark_test.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/analytics"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// LandmarkReader defines read-only operations for landmarks.
type LandmarkReader interface {
	List(ctx context.Context) ([]models.Landmark, error)                 // Returns all landmarks
	GetByID(ctx context.Context, id uuid.UUID) (*models.Landmark, error) // Returns nil when absent
}

// VisitReader defines read-only operations for visits.
type VisitReader interface {
	List(ctx context.Context) ([]models.Visit, error)                                 // Returns every visit
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Visit, error)         // Returns the visits of one user
	ListByLandmark(ctx context.Context, landmarkID uuid.UUID) ([]models.Visit, error) // Returns the visits of one landmark
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)                   // Counts the visits of one user
	CountByLandmark(ctx context.Context, landmarkID uuid.UUID) (int, error)           // Counts the visits of one landmark
}

// LandmarkService serves landmarks with derived counters and their visitors.
type LandmarkService struct {
	landmarks LandmarkReader
	users     UserReader
	visits    VisitReader
}

// NewLandmarkService creates a new LandmarkService.
func NewLandmarkService(landmarks LandmarkReader, users UserReader, visits VisitReader) *LandmarkService {
	return &LandmarkService{
		landmarks: landmarks,
		users:     users,
		visits:    visits,
	}
}

// List returns all landmarks with image and visit counts. Visit counts come
// from a single grouping of the full visit set.
func (s *LandmarkService) List(ctx context.Context) ([]models.LandmarkView, error) {
	landmarks, err := s.landmarks.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list landmarks", "error", err)
		return nil, err
	}
	if len(landmarks) == 0 {
		return []models.LandmarkView{}, nil
	}

	visits, err := s.visits.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list visits", "error", err)
		return nil, err
	}
	counts := analytics.ByLandmark(visits)

	views := make([]models.LandmarkView, 0, len(landmarks))
	for _, l := range landmarks {
		views = append(views, models.NewLandmarkView(l, counts[l.ID]))
	}
	return views, nil
}

// Get returns one landmark with its exact visit count.
// Malformed and unknown ids both yield ErrLandmarkNotFound.
func (s *LandmarkService) Get(ctx context.Context, id string) (*models.LandmarkView, error) {
	landmarkID, err := models.ParseID(id)
	if err != nil {
		logger.Log.Warnw("malformed landmark id", "id", id)
		return nil, ErrLandmarkNotFound
	}

	landmark, err := s.landmarks.GetByID(ctx, landmarkID)
	if err != nil {
		logger.Log.Errorw("failed to get landmark", "id", id, "error", err)
		return nil, err
	}
	if landmark == nil {
		return nil, ErrLandmarkNotFound
	}

	count, err := s.visits.CountByLandmark(ctx, landmarkID)
	if err != nil {
		logger.Log.Errorw("failed to count landmark visits", "id", id, "error", err)
		return nil, err
	}

	view := models.NewLandmarkView(*landmark, count)
	return &view, nil
}

// Visitors returns the visits of a landmark joined with their users.
// Visits whose user no longer exists are dropped.
func (s *LandmarkService) Visitors(ctx context.Context, id string) ([]models.Visitor, error) {
	visitors := []models.Visitor{}

	landmarkID, err := models.ParseID(id)
	if err != nil {
		logger.Log.Warnw("malformed landmark id", "id", id)
		return visitors, nil
	}

	visits, err := s.visits.ListByLandmark(ctx, landmarkID)
	if err != nil {
		logger.Log.Errorw("failed to list landmark visits", "id", id, "error", err)
		return nil, err
	}

	users := make(map[uuid.UUID]*models.User)
	for _, v := range visits {
		user, seen := users[v.UserID]
		if !seen {
			user, err = s.users.GetByID(ctx, v.UserID)
			if err != nil {
				logger.Log.Errorw("failed to get visitor", "user_id", v.UserID, "error", err)
				return nil, err
			}
			users[v.UserID] = user
		}
		if user == nil {
			logger.Log.Debugw("dropping visit of missing user", "visit_id", v.ID, "user_id", v.UserID)
			continue
		}
		visitors = append(visitors, models.Visitor{
			VisitID:   v.ID,
			User:      *user,
			VisitedAt: v.VisitedAt,
			Notes:     v.Notes,
		})
	}
	return visitors, nil
}
