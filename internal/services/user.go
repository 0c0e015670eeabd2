package services

//go:generate mockgen -source=user.go -destination=mock_user_test.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/analytics"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)                 // Returns all users
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) // Returns nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (bool, error) // Reports false when the email is taken
}

// UserService handles registration and user reads.
type UserService struct {
	reader    UserReader
	writer    UserWriter
	landmarks LandmarkReader
	visits    VisitReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, landmarks LandmarkReader, visits VisitReader) *UserService {
	return &UserService{
		reader:    reader,
		writer:    writer,
		landmarks: landmarks,
		visits:    visits,
	}
}

// Create registers a new user. Emails are compared exactly as given.
func (s *UserService) Create(ctx context.Context, username, email string) (*models.User, error) {
	if username == "" || email == "" {
		return nil, ErrUserFieldsRequired
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}
	if !created {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, ErrEmailExists
	}

	logger.Log.Infow("user created", "id", user.ID, "username", username)
	return user, nil
}

// List returns all users with their visit counts, grouped from the full
// visit set once per call.
func (s *UserService) List(ctx context.Context) ([]models.UserView, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	if len(users) == 0 {
		return []models.UserView{}, nil
	}

	visits, err := s.visits.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list visits", "error", err)
		return nil, err
	}
	counts := analytics.ByUser(visits)

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, models.UserView{User: u, VisitCount: counts[u.ID]})
	}
	return views, nil
}

// Get returns one user with the exact number of recorded visits.
func (s *UserService) Get(ctx context.Context, id string) (*models.UserView, error) {
	userID, err := models.ParseID(id)
	if err != nil {
		logger.Log.Warnw("malformed user id", "id", id)
		return nil, ErrUserNotFound
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.visits.CountByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count user visits", "id", id, "error", err)
		return nil, err
	}

	return &models.UserView{User: *user, VisitCount: count}, nil
}

// Visits returns the visits of a user joined with their landmarks.
// Visits whose landmark no longer exists are dropped.
func (s *UserService) Visits(ctx context.Context, id string) ([]models.UserVisit, error) {
	result := []models.UserVisit{}

	userID, err := models.ParseID(id)
	if err != nil {
		logger.Log.Warnw("malformed user id", "id", id)
		return result, nil
	}

	visits, err := s.visits.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user visits", "id", id, "error", err)
		return nil, err
	}

	landmarks := make(map[uuid.UUID]*models.Landmark)
	for _, v := range visits {
		landmark, seen := landmarks[v.LandmarkID]
		if !seen {
			landmark, err = s.landmarks.GetByID(ctx, v.LandmarkID)
			if err != nil {
				logger.Log.Errorw("failed to get visited landmark", "landmark_id", v.LandmarkID, "error", err)
				return nil, err
			}
			landmarks[v.LandmarkID] = landmark
		}
		if landmark == nil {
			logger.Log.Debugw("dropping visit of missing landmark", "visit_id", v.ID, "landmark_id", v.LandmarkID)
			continue
		}
		result = append(result, models.UserVisit{
			VisitID:   v.ID,
			Landmark:  *landmark,
			VisitedAt: v.VisitedAt,
			Notes:     v.Notes,
		})
	}
	return result, nil
}
