package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gt-landmarks/internal/models"
)

const visitColumns = `id, user_id, landmark_id, visited_at, notes`

// VisitRepository stores visits.
type VisitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

// List returns every visit ordered by visit time.
func (r *VisitRepository) List(ctx context.Context) ([]models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits ORDER BY visited_at, id`
	return r.list(ctx, query)
}

// ListByUser returns the visits of one user ordered by visit time.
func (r *VisitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits WHERE user_id = $1 ORDER BY visited_at, id`
	return r.list(ctx, query, userID)
}

// ListByLandmark returns the visits of one landmark ordered by visit time.
func (r *VisitRepository) ListByLandmark(ctx context.Context, landmarkID uuid.UUID) ([]models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits WHERE landmark_id = $1 ORDER BY visited_at, id`
	return r.list(ctx, query, landmarkID)
}

func (r *VisitRepository) list(ctx context.Context, query string, args ...any) ([]models.Visit, error) {
	visits := []models.Visit{}
	err := r.db.SelectContext(ctx, &visits, query, args...)

	logQuery(query, args, len(visits), err)

	if err != nil {
		return nil, err
	}
	return visits, nil
}

// CountByUser counts the visits of one user.
func (r *VisitRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM visits WHERE user_id = $1`
	return r.count(ctx, query, userID)
}

// CountByLandmark counts the visits of one landmark.
func (r *VisitRepository) CountByLandmark(ctx context.Context, landmarkID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM visits WHERE landmark_id = $1`
	return r.count(ctx, query, landmarkID)
}

func (r *VisitRepository) count(ctx context.Context, query string, id uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, query, id)

	logQuery(query, []any{id}, count, err)

	return count, err
}

// GetByPair returns the visit of userID to landmarkID or nil.
func (r *VisitRepository) GetByPair(ctx context.Context, userID, landmarkID uuid.UUID) (*models.Visit, error) {
	const query = `SELECT ` + visitColumns + ` FROM visits WHERE user_id = $1 AND landmark_id = $2`

	var visit models.Visit
	err := r.db.GetContext(ctx, &visit, query, userID, landmarkID)

	logQuery(query, []any{userID, landmarkID}, visit.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// Save inserts a visit. It reports false without error when a visit for the
// same (user, landmark) pair already exists.
func (r *VisitRepository) Save(ctx context.Context, visit *models.Visit) (bool, error) {
	const query = `
		INSERT INTO visits (id, user_id, landmark_id, visited_at, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, landmark_id) DO NOTHING
		RETURNING id
	`

	if visit.ID == uuid.Nil {
		visit.ID = uuid.New()
	}

	args := []any{visit.ID, visit.UserID, visit.LandmarkID, visit.VisitedAt, visit.Notes}
	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(query, args, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
