// Package seeder fills the store with a fixed set of landmarks, users and
// visits for demos and local development. Running it twice is harmless:
// records already present under their natural key are left untouched.
package seeder

//go:generate mockgen -source=seeder.go -destination=mock_seeder_test.go -package=seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/importer"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// LandmarkStore reads and writes landmarks.
type LandmarkStore interface {
	GetByName(ctx context.Context, name string) (*models.Landmark, error) // Returns nil when absent
	Save(ctx context.Context, landmark *models.Landmark) error            // Inserts a landmark
}

// UserStore reads and writes users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error) // Returns nil when absent
	Save(ctx context.Context, user *models.User) (bool, error)          // Reports false when the email is taken
}

// VisitStore writes visits.
type VisitStore interface {
	Save(ctx context.Context, visit *models.Visit) (bool, error) // Reports false when the pair exists
}

// Report summarises a seeding run.
type Report struct {
	LandmarksCreated int
	LandmarksExisted int
	UsersCreated     int
	UsersExisted     int
	VisitsCreated    int
	VisitsExisted    int
}

// Seeder writes the sample dataset.
type Seeder struct {
	landmarks LandmarkStore
	users     UserStore
	visits    VisitStore
}

// New creates a new Seeder.
func New(landmarks LandmarkStore, users UserStore, visits VisitStore) *Seeder {
	return &Seeder{
		landmarks: landmarks,
		users:     users,
		visits:    visits,
	}
}

// Run seeds landmarks, users and visits. Creation times and visit times are
// offsets in days from now.
func (s *Seeder) Run(ctx context.Context, now time.Time) (*Report, error) {
	report := &Report{}

	landmarkIDs, err := s.seedLandmarks(ctx, now, report)
	if err != nil {
		return report, err
	}
	userIDs, err := s.seedUsers(ctx, now, report)
	if err != nil {
		return report, err
	}
	if err := s.seedVisits(ctx, now, landmarkIDs, userIDs, report); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Seeder) seedLandmarks(ctx context.Context, now time.Time, report *Report) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(landmarkFolders))

	for _, folder := range landmarkFolders {
		name, description := importer.Describe(folder)

		existing, err := s.landmarks.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("get landmark %q: %w", name, err)
		}
		if existing != nil {
			ids[name] = existing.ID
			report.LandmarksExisted++
			logger.Log.Infow("landmark already exists", "name", name)
			continue
		}

		landmark := newLandmark(name, description, now)
		if err := s.landmarks.Save(ctx, landmark); err != nil {
			return nil, fmt.Errorf("save landmark %q: %w", name, err)
		}
		ids[name] = landmark.ID
		report.LandmarksCreated++
		logger.Log.Infow("landmark created", "name", name, "images", len(landmark.TrainingImages))
	}
	return ids, nil
}

func newLandmark(name, description string, now time.Time) *models.Landmark {
	landmark := &models.Landmark{
		Name:           name,
		FullName:       name,
		Description:    description,
		FunFacts:       models.StringList{},
		TrainingImages: models.TrainingImages{},
		CreatedAt:      now,
	}
	if extra, ok := extras[name]; ok {
		landmark.Location = extra.Location
		landmark.FunFacts = extra.FunFacts
		landmark.TrainingImages = extra.TrainingImages
		if len(extra.TrainingImages) > 0 {
			landmark.ThumbnailURL = extra.TrainingImages[0].URL
		}
	}
	return landmark
}

func (s *Seeder) seedUsers(ctx context.Context, now time.Time, report *Report) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(sampleUsers))

	for _, su := range sampleUsers {
		existing, err := s.users.GetByEmail(ctx, su.email)
		if err != nil {
			return nil, fmt.Errorf("get user %q: %w", su.email, err)
		}
		if existing == nil {
			user := &models.User{
				Username:  su.username,
				Email:     su.email,
				CreatedAt: daysAgo(now, su.daysAgo),
			}
			created, err := s.users.Save(ctx, user)
			if err != nil {
				return nil, fmt.Errorf("save user %q: %w", su.email, err)
			}
			if created {
				ids[su.username] = user.ID
				report.UsersCreated++
				logger.Log.Infow("user created", "username", su.username)
				continue
			}
			// Inserted concurrently since the lookup.
			if existing, err = s.users.GetByEmail(ctx, su.email); err != nil {
				return nil, fmt.Errorf("get user %q: %w", su.email, err)
			}
			if existing == nil {
				return nil, fmt.Errorf("user %q rejected but not found", su.email)
			}
		}
		ids[su.username] = existing.ID
		report.UsersExisted++
		logger.Log.Infow("user already exists", "username", su.username)
	}
	return ids, nil
}

func (s *Seeder) seedVisits(ctx context.Context, now time.Time, landmarkIDs, userIDs map[string]uuid.UUID, report *Report) error {
	for _, sv := range sampleVisits {
		userID, ok := userIDs[sv.user]
		if !ok {
			return fmt.Errorf("unknown sample user %q", sv.user)
		}
		landmarkID, ok := landmarkIDs[sv.landmark]
		if !ok {
			return fmt.Errorf("unknown sample landmark %q", sv.landmark)
		}

		created, err := s.visits.Save(ctx, &models.Visit{
			UserID:     userID,
			LandmarkID: landmarkID,
			VisitedAt:  daysAgo(now, sv.daysAgo),
			Notes:      sv.notes,
		})
		if err != nil {
			return fmt.Errorf("save visit %s -> %s: %w", sv.user, sv.landmark, err)
		}
		if created {
			report.VisitsCreated++
			logger.Log.Infow("visit created", "user", sv.user, "landmark", sv.landmark)
		} else {
			report.VisitsExisted++
			logger.Log.Infow("visit already exists", "user", sv.user, "landmark", sv.landmark)
		}
	}
	return nil
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days).UTC()
}
