package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTeamMembersTable, downCreateTeamMembersTable)
}

func upCreateTeamMembersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE team_members (
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL,
	  role_uk TEXT NOT NULL,
	  role_en TEXT NOT NULL,
	  skills TEXT,
	  avatar TEXT,
	  initials TEXT,
	  order_index INTEGER NOT NULL DEFAULT 0,
	  is_active BOOLEAN NOT NULL DEFAULT TRUE,
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

func downCreateTeamMembersTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS team_members;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
