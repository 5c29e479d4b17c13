package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreatePackagesTable, downCreatePackagesTable)
}

func upCreatePackagesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE packages (
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL,
	  slug TEXT UNIQUE NOT NULL,
	  price_uk TEXT NOT NULL,
	  price_en TEXT NOT NULL,
	  duration_uk TEXT,
	  duration_en TEXT,
	  features_uk JSONB NOT NULL DEFAULT '[]',
	  features_en JSONB NOT NULL DEFAULT '[]',
	  advantages_uk JSONB NOT NULL DEFAULT '[]',
	  advantages_en JSONB NOT NULL DEFAULT '[]',
	  process_uk JSONB NOT NULL DEFAULT '[]',
	  process_en JSONB NOT NULL DEFAULT '[]',
	  support_uk TEXT,
	  support_en TEXT,
	  is_popular BOOLEAN NOT NULL DEFAULT FALSE,
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

func downCreatePackagesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS packages;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
