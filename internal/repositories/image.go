package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

// ImageRepository is the blob store for landmark images, keyed by filename.
type ImageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// GetByFilename returns the image stored under filename or nil.
func (r *ImageRepository) GetByFilename(ctx context.Context, filename string) (*models.Image, error) {
	const query = `
		SELECT filename, content_type, landmark_name, data, uploaded_at
		FROM images
		WHERE filename = $1
	`

	var image models.Image
	err := r.db.GetContext(ctx, &image, query, filename)

	// Content is left out of the log on purpose.
	logQuery(query, []any{filename}, len(image.Data), err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Exists reports whether an image is stored under filename.
func (r *ImageRepository) Exists(ctx context.Context, filename string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM images WHERE filename = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, filename)

	logQuery(query, []any{filename}, exists, err)

	return exists, err
}

// Save stores an image unless one already exists under the same filename.
// It reports whether the image was written.
func (r *ImageRepository) Save(ctx context.Context, image *models.Image) (bool, error) {
	const query = `
		INSERT INTO images (filename, content_type, landmark_name, data, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (filename) DO NOTHING
	`

	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, query,
		image.Filename, image.ContentType, image.LandmarkName, image.Data, image.UploadedAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{image.Filename, image.ContentType, image.LandmarkName, len(image.Data)}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
