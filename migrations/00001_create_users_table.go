package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersTable, downCreateUsersTable)
}

func upCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE users (
	  id BIGSERIAL PRIMARY KEY,
	  email TEXT UNIQUE NOT NULL,
	  name TEXT NOT NULL,
	  password_hash TEXT NOT NULL,
	  is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
	  avatar_url TEXT,
	  password_changed_at TIMESTAMP WITH TIME ZONE,
	  last_login TIMESTAMP WITH TIME ZONE,
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

func downCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS users;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
