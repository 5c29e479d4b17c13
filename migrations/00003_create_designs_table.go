package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateDesignsTable, downCreateDesignsTable)
}

func upCreateDesignsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE designs (
	  id BIGSERIAL PRIMARY KEY,
	  title TEXT NOT NULL,
	  slug TEXT UNIQUE NOT NULL,
	  title_uk TEXT NOT NULL,
	  title_en TEXT NOT NULL,
	  description_uk TEXT,
	  description_en TEXT,
	  metrics_uk TEXT,
	  metrics_en TEXT,
	  category_id TEXT NOT NULL REFERENCES design_categories(id),
	  technology TEXT,
	  image_url TEXT,
	  figma_url TEXT,
	  live_url TEXT,
	  show_live_demo BOOLEAN NOT NULL DEFAULT FALSE,
	  is_published BOOLEAN NOT NULL DEFAULT FALSE,
	  is_featured BOOLEAN NOT NULL DEFAULT FALSE,
	  sort_order INTEGER NOT NULL DEFAULT 0,
	  views_count BIGINT NOT NULL DEFAULT 0,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_designs_category_id ON designs(category_id);
	CREATE INDEX idx_designs_is_published ON designs(is_published);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateDesignsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS designs;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
