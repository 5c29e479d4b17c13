package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateDesignCategoriesTable, downCreateDesignCategoriesTable)
}

func upCreateDesignCategoriesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE design_categories (
	  id TEXT PRIMARY KEY,
	  slug TEXT UNIQUE NOT NULL,
	  title_uk TEXT NOT NULL,
	  title_en TEXT NOT NULL,
	  description_uk TEXT,
	  description_en TEXT,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  sort_order INTEGER NOT NULL DEFAULT 0,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateDesignCategoriesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS design_categories;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
