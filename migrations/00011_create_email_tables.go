package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateEmailTables, downCreateEmailTables)
}

func upCreateEmailTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE email_templates (
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT UNIQUE NOT NULL,
	  subject_uk TEXT NOT NULL,
	  subject_en TEXT NOT NULL,
	  content_uk TEXT NOT NULL,
	  content_en TEXT NOT NULL,
	  variables JSONB NOT NULL DEFAULT '[]',
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE TABLE email_logs (
	  id BIGSERIAL PRIMARY KEY,
	  template_name TEXT NOT NULL,
	  recipient_email TEXT NOT NULL,
	  subject TEXT NOT NULL,
	  content TEXT NOT NULL,
	  status TEXT NOT NULL DEFAULT 'pending',
	  error_message TEXT,
	  retry_count INTEGER NOT NULL DEFAULT 0,
	  sent_at TIMESTAMP WITH TIME ZONE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_email_logs_status ON email_logs(status);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateEmailTables(ctx context.Context, tx *sql.Tx) error {
	query := `
	DROP TABLE IF EXISTS email_logs;
	DROP TABLE IF EXISTS email_templates;
	`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
