package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	Username  string    `json:"username" db:"username"`     // Display name, not unique
	Email     string    `json:"email" db:"email"`           // Unique across all users
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserView is a user augmented with the number of recorded visits.
type UserView struct {
	User
	VisitCount int `json:"visit_count"`
}
