package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema creates the store namespace: three record tables and the blob table.
// Statements are idempotent and run on every start.
//
// visits carries no foreign keys: user_id and landmark_id are weak references.
// Uniqueness of users.email and of (visits.user_id, visits.landmark_id) is
// enforced here rather than by read-then-write checks.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS landmarks (
		id              UUID PRIMARY KEY,
		name            TEXT NOT NULL,
		full_name       TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		location        JSONB,
		fun_facts       JSONB NOT NULL DEFAULT '[]',
		training_images JSONB NOT NULL DEFAULT '[]',
		thumbnail_url   TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_landmarks_name ON landmarks (name)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS visits (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL,
		landmark_id UUID NOT NULL,
		visited_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes       TEXT NOT NULL DEFAULT '',
		UNIQUE (user_id, landmark_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_landmark_id ON visits (landmark_id)`,
	`CREATE TABLE IF NOT EXISTS images (
		filename      TEXT PRIMARY KEY,
		content_type  TEXT NOT NULL DEFAULT '',
		landmark_name TEXT NOT NULL DEFAULT '',
		data          BYTEA NOT NULL,
		uploaded_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Bootstrap creates missing tables and indexes.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
