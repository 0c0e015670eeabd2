package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Location is a geographic point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Value implements driver.Valuer. A nil *Location is stored as SQL NULL.
func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *Location) Scan(src any) error {
	return scanJSON(src, l)
}

// TrainingImage references one image of a landmark.
type TrainingImage struct {
	URL         string `json:"url"`                    // Public URL, absolute or /api/images/...
	Description string `json:"description"`            // Short caption or original filename
	ContentType string `json:"content_type,omitempty"` // MIME type recorded at import time
	License     string `json:"license,omitempty"`      // License of externally hosted images
}

// TrainingImages is the ordered JSONB list of a landmark's images.
type TrainingImages []TrainingImage

// Value implements driver.Valuer.
func (t TrainingImages) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]TrainingImage(t))
}

// Scan implements sql.Scanner.
func (t *TrainingImages) Scan(src any) error {
	*t = TrainingImages{}
	return scanJSON(src, (*[]TrainingImage)(t))
}

// Landmark represents a landmark row in the database
type Landmark struct {
	ID             uuid.UUID      `json:"id" db:"id"`                           // Store-assigned identifier
	Name           string         `json:"name" db:"name"`                       // Short display label, natural key for imports
	FullName       string         `json:"full_name" db:"full_name"`             // Full official name
	Description    string         `json:"description" db:"description"`         // Free text description
	Location       *Location      `json:"location" db:"location"`               // Optional coordinates
	FunFacts       StringList     `json:"fun_facts" db:"fun_facts"`             // Ordered trivia
	TrainingImages TrainingImages `json:"training_images" db:"training_images"` // Ordered images
	ThumbnailURL   string         `json:"thumbnail_url" db:"thumbnail_url"`     // Usually the first training image
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`           // Creation timestamp
}

// LandmarkView is a landmark augmented with derived counters.
// ImageCount is always len(TrainingImages); it is never stored.
type LandmarkView struct {
	Landmark
	ImageCount int `json:"image_count"`
	VisitCount int `json:"visit_count"`
}

// NewLandmarkView builds a view, recomputing image_count from the images list.
func NewLandmarkView(l Landmark, visitCount int) LandmarkView {
	return LandmarkView{
		Landmark:   l,
		ImageCount: len(l.TrainingImages),
		VisitCount: visitCount,
	}
}
