package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInitTables, downInitTables)
}

func upInitTables(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE trips (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			destination VARCHAR(255) NOT NULL,
			start_date VARCHAR(64) NOT NULL,
			end_date VARCHAR(64) NOT NULL,
			people_count INTEGER NOT NULL,
			budget_range VARCHAR(255) NOT NULL,
			travel_style VARCHAR(255) NOT NULL,
			itinerary TEXT,
			total_budget NUMERIC(10,2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE budgets (
			id BIGSERIAL PRIMARY KEY,
			trip_id BIGINT NOT NULL,
			accommodation NUMERIC(10,2) NOT NULL DEFAULT 0,
			food NUMERIC(10,2) NOT NULL DEFAULT 0,
			transport NUMERIC(10,2) NOT NULL DEFAULT 0,
			others NUMERIC(10,2) NOT NULL DEFAULT 0,
			total NUMERIC(10,2) NOT NULL DEFAULT 0
		);
		CREATE INDEX idx_budgets_trip_id ON budgets(trip_id);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE reviews (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			trip_id BIGINT,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			rating INTEGER NOT NULL,
			destination VARCHAR(255) NOT NULL,
			author VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX idx_reviews_user_id ON reviews(user_id);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE faqs (
			id BIGSERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category VARCHAR(255) NOT NULL,
			"order" INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		CREATE TABLE inquiries (
			id BIGSERIAL PRIMARY KEY,
			type VARCHAR(255) NOT NULL,
			phone VARCHAR(64),
			content TEXT NOT NULL,
			status VARCHAR(64) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func downInitTables(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		DROP TABLE IF EXISTS inquiries;
		DROP TABLE IF EXISTS faqs;
		DROP TABLE IF EXISTS reviews;
		DROP TABLE IF EXISTS budgets;
		DROP TABLE IF EXISTS trips;
		DROP TABLE IF EXISTS users;
	`)
	return err
}
