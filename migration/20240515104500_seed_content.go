package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	dbt "yolo/db/db"
)

func init() {
	goose.AddMigrationContext(upSeedContent, downSeedContent)
}

// Seeds the FAQ and sample review content every deployment starts with.
func upSeedContent(ctx context.Context, tx *sql.Tx) error {
	for _, faq := range dbt.DefaultFAQs() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO faqs (question, answer, category, "order")
			VALUES ($1, $2, $3, $4);
		`, faq.Question, faq.Answer, faq.Category, faq.Order)
		if err != nil {
			return err
		}
	}

	for _, review := range dbt.DefaultReviews() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO reviews (user_id, trip_id, title, content, rating, destination, author, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`, review.UserID, review.TripID, review.Title, review.Content, review.Rating, review.Destination, review.Author, review.CreatedAt)
		if err != nil {
			return err
		}
	}

	return nil
}

func downSeedContent(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM faqs;`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE trip_id IS NULL AND user_id <= 3;`)
	return err
}
