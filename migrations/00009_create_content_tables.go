package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateContentTables, downCreateContentTables)
}

func upCreateContentTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE about_content (
	  id BIGSERIAL PRIMARY KEY,
	  hero_title_uk TEXT,
	  hero_title_en TEXT,
	  hero_subtitle_uk TEXT,
	  hero_subtitle_en TEXT,
	  mission_uk TEXT,
	  mission_en TEXT,
	  vision_uk TEXT,
	  vision_en TEXT,
	  why_choose_us_uk TEXT,
	  why_choose_us_en TEXT,
	  cta_title_uk TEXT,
	  cta_title_en TEXT,
	  cta_description_uk TEXT,
	  cta_description_en TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE content (
	  id BIGSERIAL PRIMARY KEY,
	  key TEXT UNIQUE NOT NULL,
	  content_uk TEXT NOT NULL,
	  content_en TEXT NOT NULL,
	  description TEXT,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE contact_info (
	  id BIGSERIAL PRIMARY KEY,
	  phone TEXT,
	  email TEXT,
	  telegram TEXT,
	  telegram_url TEXT,
	  address_uk TEXT,
	  address_en TEXT,
	  working_hours_uk TEXT,
	  working_hours_en TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE policies (
	  id BIGSERIAL PRIMARY KEY,
	  type TEXT UNIQUE NOT NULL,
	  title_uk TEXT NOT NULL,
	  title_en TEXT NOT NULL,
	  content_uk TEXT NOT NULL,
	  content_en TEXT NOT NULL,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  version INTEGER NOT NULL DEFAULT 1,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE site_settings (
	  id BIGSERIAL PRIMARY KEY,
	  category TEXT NOT NULL,
	  key TEXT NOT NULL,
	  value TEXT,
	  type TEXT NOT NULL DEFAULT 'string',
	  description TEXT,
	  is_public BOOLEAN NOT NULL DEFAULT FALSE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  UNIQUE (category, key)
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateContentTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS site_settings;
	DROP TABLE IF EXISTS policies;
	DROP TABLE IF EXISTS contact_info;
	DROP TABLE IF EXISTS content;
	DROP TABLE IF EXISTS about_content;
	`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
