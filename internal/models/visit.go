package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit represents a visit row in the database.
// UserID and LandmarkID are weak references: the referenced records may be
// missing.
type Visit struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	LandmarkID uuid.UUID `json:"landmark_id" db:"landmark_id"`
	VisitedAt  time.Time `json:"visited_at" db:"visited_at"`
	Notes      string    `json:"notes" db:"notes"`
}

// UserVisit is a visit of a user joined with the visited landmark.
type UserVisit struct {
	VisitID   uuid.UUID `json:"visit_id"`
	Landmark  Landmark  `json:"landmark"`
	VisitedAt time.Time `json:"visited_at"`
	Notes     string    `json:"notes"`
}

// Visitor is a visit of a landmark joined with the visiting user.
type Visitor struct {
	VisitID   uuid.UUID `json:"visit_id"`
	User      User      `json:"user"`
	VisitedAt time.Time `json:"visited_at"`
	Notes     string    `json:"notes"`
}

// VisitEvent is published to Kafka each time a new visit is recorded.
type VisitEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Type       string `json:"type"`        // Always "visit.recorded"
	VisitID    string `json:"visit_id"`    // Recorded visit
	UserID     string `json:"user_id"`     // Visiting user
	LandmarkID string `json:"landmark_id"` // Visited landmark
	Timestamp  int64  `json:"timestamp"`   // Unix seconds of the visit
}
