package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
)

// Schema holds the DDL statements in dependency order. Every statement is
// idempotent so Up can run on every start.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		email VARCHAR(120) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	);`,
	`CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		title VARCHAR(128) NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		bedrooms INTEGER NOT NULL,
		bathrooms DOUBLE PRECISION NOT NULL,
		square_feet INTEGER,
		address VARCHAR(256) NOT NULL,
		city VARCHAR(64) NOT NULL,
		state VARCHAR(64) NOT NULL,
		zip_code VARCHAR(10) NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		is_published BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS listings_user_id_idx ON listings (user_id);`,
	`CREATE INDEX IF NOT EXISTS listings_created_at_idx ON listings (created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS amenities (
		id SERIAL PRIMARY KEY,
		name VARCHAR(64) NOT NULL,
		icon VARCHAR(64),
		CONSTRAINT amenities_name_key UNIQUE (name)
	);`,
	`CREATE TABLE IF NOT EXISTS listing_amenities (
		listing_id UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		amenity_id INTEGER NOT NULL REFERENCES amenities(id) ON DELETE CASCADE,
		PRIMARY KEY (listing_id, amenity_id)
	);`,
	`CREATE TABLE IF NOT EXISTS listing_images (
		id SERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		caption TEXT,
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		listing_id UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE
	);`,
	`CREATE INDEX IF NOT EXISTS listing_images_listing_id_idx ON listing_images (listing_id);`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		content TEXT NOT NULL,
		rating INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		listing_id UUID NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
		CONSTRAINT reviews_user_listing_key UNIQUE (user_id, listing_id)
	);`,
	`CREATE INDEX IF NOT EXISTS reviews_listing_id_idx ON reviews (listing_id, created_at DESC);`,
}

// Up applies the schema. A failing statement is retried up to retries times,
// one second apart, to ride out a database that is still starting.
func Up(ctx context.Context, db *sqlx.DB, retries int) error {
	for i, stmt := range Schema {
		var err error
		for attempt := 0; attempt <= retries; attempt++ {
			if attempt > 0 {
				logger.Log.Warnw("retrying migration", "statement", i, "attempt", attempt, "error", err)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Second):
				}
			}
			if _, err = db.ExecContext(ctx, stmt); err == nil {
				break
			}
		}
		if err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	logger.Log.Infow("migrations applied", "statements", len(Schema))
	return nil
}
