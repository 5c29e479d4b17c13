package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUploadedFilesTable, downCreateUploadedFilesTable)
}

func upCreateUploadedFilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE uploaded_files (
	  id BIGSERIAL PRIMARY KEY,
	  uploaded_by_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
	  original_filename TEXT NOT NULL,
	  stored_filename TEXT UNIQUE NOT NULL,
	  file_path TEXT NOT NULL,
	  file_url TEXT NOT NULL,
	  file_size BIGINT NOT NULL,
	  mime_type TEXT NOT NULL,
	  file_extension TEXT NOT NULL,
	  category TEXT NOT NULL DEFAULT 'general',
	  alt_text TEXT,
	  hash TEXT NOT NULL,
	  thumbnail_url TEXT,
	  is_used BOOLEAN NOT NULL DEFAULT FALSE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	CREATE INDEX idx_uploaded_files_category ON uploaded_files(category);
	CREATE INDEX idx_uploaded_files_hash ON uploaded_files(hash);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateUploadedFilesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS uploaded_files;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
