package models

import "time"

// DefaultContentType is served when no content type was recorded on upload.
const DefaultContentType = "application/octet-stream"

// Image is a binary object stored in the blob table.
type Image struct {
	Filename     string    `db:"filename"`      // Unique key, e.g. "tech_tower/Image_1.jpg"
	ContentType  string    `db:"content_type"`  // MIME type, may be empty
	LandmarkName string    `db:"landmark_name"` // Display name of the owning landmark
	Data         []byte    `db:"data"`          // Raw content
	UploadedAt   time.Time `db:"uploaded_at"`   // Upload timestamp
}
