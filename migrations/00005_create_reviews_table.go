package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateReviewsTable, downCreateReviewsTable)
}

func upCreateReviewsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE reviews (
	  id BIGSERIAL PRIMARY KEY,
	  user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	  text_uk TEXT NOT NULL,
	  text_en TEXT NOT NULL,
	  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	  company TEXT,
	  author_name TEXT,
	  author_email TEXT,
	  is_approved BOOLEAN NOT NULL DEFAULT FALSE,
	  approved_at TIMESTAMP WITH TIME ZONE,
	  approved_by_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	  is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	  sort_order INTEGER NOT NULL DEFAULT 0,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_reviews_is_approved ON reviews(is_approved);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateReviewsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS reviews;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
