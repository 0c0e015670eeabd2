package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

const landmarkColumns = `id, name, full_name, description, location, fun_facts, training_images, thumbnail_url, created_at`

// LandmarkRepository stores landmark documents.
type LandmarkRepository struct {
	db *sqlx.DB
}

func NewLandmarkRepository(db *sqlx.DB) *LandmarkRepository {
	return &LandmarkRepository{db: db}
}

// List returns all landmarks in creation order.
func (r *LandmarkRepository) List(ctx context.Context) ([]models.Landmark, error) {
	const query = `SELECT ` + landmarkColumns + ` FROM landmarks ORDER BY created_at, id`

	landmarks := []models.Landmark{}
	err := r.db.SelectContext(ctx, &landmarks, query)

	logQuery(query, nil, len(landmarks), err)

	if err != nil {
		return nil, err
	}
	return landmarks, nil
}

// GetByID returns the landmark or nil when it does not exist.
func (r *LandmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Landmark, error) {
	const query = `SELECT ` + landmarkColumns + ` FROM landmarks WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByName returns the oldest landmark with the given name or nil.
func (r *LandmarkRepository) GetByName(ctx context.Context, name string) (*models.Landmark, error) {
	const query = `SELECT ` + landmarkColumns + ` FROM landmarks WHERE name = $1 ORDER BY created_at, id LIMIT 1`
	return r.get(ctx, query, name)
}

func (r *LandmarkRepository) get(ctx context.Context, query string, arg any) (*models.Landmark, error) {
	var landmark models.Landmark
	err := r.db.GetContext(ctx, &landmark, query, arg)

	logQuery(query, []any{arg}, landmark.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &landmark, nil
}

// Save inserts a new landmark, assigning its id and creation time when unset.
func (r *LandmarkRepository) Save(ctx context.Context, landmark *models.Landmark) error {
	const query = `
		INSERT INTO landmarks (id, name, full_name, description, location, fun_facts, training_images, thumbnail_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if landmark.ID == uuid.Nil {
		landmark.ID = uuid.New()
	}
	if landmark.CreatedAt.IsZero() {
		landmark.CreatedAt = time.Now().UTC()
	}

	args := []any{
		landmark.ID,
		landmark.Name,
		landmark.FullName,
		landmark.Description,
		landmark.Location,
		landmark.FunFacts,
		landmark.TrainingImages,
		landmark.ThumbnailURL,
		landmark.CreatedAt,
	}
	_, err := r.db.ExecContext(ctx, query, args...)

	logQuery(query, args, landmark.ID, err)

	return err
}

// UpdateImages replaces the training images and thumbnail of a landmark.
func (r *LandmarkRepository) UpdateImages(ctx context.Context, id uuid.UUID, images models.TrainingImages, thumbnailURL string) error {
	const query = `
		UPDATE landmarks
		SET training_images = $2, thumbnail_url = $3
		WHERE id = $1
	`

	args := []any{id, images, thumbnailURL}
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}
