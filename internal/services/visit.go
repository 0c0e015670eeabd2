package services

//go:generate mockgen -source=visit.go -destination=mock_visit_test.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
	"github.com/segmentio/kafka-go"
)

// VisitEventRecorded is the type of the event published after a new visit.
const VisitEventRecorded = "visit.recorded"

// VisitWriter defines write operations for visits.
type VisitWriter interface {
	Save(ctx context.Context, visit *models.Visit) (bool, error)                        // Reports false when the pair already exists
	GetByPair(ctx context.Context, userID, landmarkID uuid.UUID) (*models.Visit, error) // Returns the visit of a pair
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// VisitService records check-ins and publishes visit events.
type VisitService struct {
	writer      VisitWriter
	kafkaWriter KafkaWriter
}

// NewVisitService creates a new VisitService. kafkaWriter may be nil.
func NewVisitService(writer VisitWriter, kafkaWriter KafkaWriter) *VisitService {
	return &VisitService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Record stores a visit of userID to landmarkID. When the pair is already
// recorded the existing visit is returned with created set to false.
// Neither id is checked for existence.
func (s *VisitService) Record(ctx context.Context, userID, landmarkID, notes string) (visit *models.Visit, created bool, err error) {
	if userID == "" || landmarkID == "" {
		return nil, false, ErrVisitFieldsRequired
	}

	uid, err := models.ParseID(userID)
	if err != nil {
		return nil, false, ErrInvalidVisitReference
	}
	lid, err := models.ParseID(landmarkID)
	if err != nil {
		return nil, false, ErrInvalidVisitReference
	}

	visit = &models.Visit{
		UserID:     uid,
		LandmarkID: lid,
		VisitedAt:  time.Now().UTC(),
		Notes:      notes,
	}

	created, err = s.writer.Save(ctx, visit)
	if err != nil {
		logger.Log.Errorw("failed to save visit", "user_id", userID, "landmark_id", landmarkID, "error", err)
		return nil, false, err
	}

	if !created {
		existing, err := s.writer.GetByPair(ctx, uid, lid)
		if err != nil {
			logger.Log.Errorw("failed to get existing visit", "user_id", userID, "landmark_id", landmarkID, "error", err)
			return nil, false, err
		}
		if existing == nil {
			return nil, false, errors.New("visit conflict reported but no visit found")
		}
		logger.Log.Infow("visit already recorded", "visit_id", existing.ID)
		return existing, false, nil
	}

	s.publishVisit(ctx, models.VisitEvent{
		EventID:    uuid.NewString(),
		Type:       VisitEventRecorded,
		VisitID:    visit.ID.String(),
		UserID:     visit.UserID.String(),
		LandmarkID: visit.LandmarkID.String(),
		Timestamp:  visit.VisitedAt.Unix(),
	})

	return visit, true, nil
}

// publishVisit publishes a visit event to Kafka.
func (s *VisitService) publishVisit(ctx context.Context, event models.VisitEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal visit event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.LandmarkID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish visit event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Visit event published to Kafka", "event_id", event.EventID, "visit_id", event.VisitID)
	}
}
