package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateFAQTable, downCreateFAQTable)
}

func upCreateFAQTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE faq (
	  id BIGSERIAL PRIMARY KEY,
	  question_uk TEXT NOT NULL,
	  question_en TEXT NOT NULL,
	  answer_uk TEXT NOT NULL,
	  answer_en TEXT NOT NULL,
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

func downCreateFAQTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS faq;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
