package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateApplicationsTables, downCreateApplicationsTables)
}

func upCreateApplicationsTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE quote_applications (
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL,
	  email TEXT NOT NULL,
	  phone TEXT,
	  project_type TEXT NOT NULL,
	  budget TEXT,
	  description TEXT NOT NULL,
	  package_id BIGINT REFERENCES packages(id) ON DELETE SET NULL,
	  status TEXT NOT NULL DEFAULT 'new',
	  assigned_to_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	  processed_at TIMESTAMP WITH TIME ZONE,
	  response_text TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_quote_applications_status ON quote_applications(status);

	CREATE TABLE consultation_applications (
	  id BIGSERIAL PRIMARY KEY,
	  first_name TEXT NOT NULL,
	  last_name TEXT NOT NULL,
	  phone TEXT NOT NULL,
	  telegram TEXT,
	  message TEXT,
	  status TEXT NOT NULL DEFAULT 'new',
	  assigned_to_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	  consultation_scheduled_at TIMESTAMP WITH TIME ZONE,
	  consultation_completed_at TIMESTAMP WITH TIME ZONE,
	  notes TEXT,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_consultation_applications_status ON consultation_applications(status);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateApplicationsTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS consultation_applications;
	DROP TABLE IF EXISTS quote_applications;
	`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
