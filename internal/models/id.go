package models

import "github.com/google/uuid"

// ParseID parses the external (string) form of a record identifier.
// Callers treat any parse failure the same as an unknown id.
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
