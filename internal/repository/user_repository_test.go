package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	repo "studio-api/internal/repository"

	"studio-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestPostgresUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash, is_admin) VALUES ($1, $2, $3, $4) RETURNING id`)).
		WithArgs("a@b.com", "Name", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := r.Create(context.Background(), &model.User{Email: "a@b.com", Name: "Name", PasswordHash: "hash"})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByEmail_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresUserRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "is_admin", "is_active"}).
		AddRow(int64(1), "a@b.com", "Name", "hash", true, true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE email = $1`)).
		WithArgs("a@b.com").WillReturnRows(rows)

	u, err := r.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "a@b.com", u.Email)
	require.True(t, u.IsAdmin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByID_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM users WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)

	_, err = r.FindByID(context.Background(), 99)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash = $1, password_changed_at = now(), updated_at = now() WHERE id = $2`)).
		WithArgs("newhash", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.UpdatePassword(context.Background(), 3, "newhash"))
	require.NoError(t, mock.ExpectationsWereMet())
}
