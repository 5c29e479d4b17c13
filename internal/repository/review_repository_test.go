package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	repo "studio-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestPostgresReviewRepository_ExistsForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresReviewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1)`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := r.ExistsForUser(context.Background(), 4)
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_Approve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresReviewRepository(sqlxDB)

	at := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE reviews SET is_approved = TRUE, approved_at = $1, approved_by_id = $2, updated_at = now() WHERE id = $3`)).
		WithArgs(at, int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Approve(context.Background(), 9, 1, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReviewRepository_List_PendingOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresReviewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM reviews WHERE is_approved = FALSE`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	rows := sqlmock.NewRows([]string{"id", "text_uk", "text_en", "rating", "is_approved"}).
		AddRow(int64(2), "текст", "text", 4, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM reviews WHERE is_approved = FALSE ORDER BY sort_order ASC, created_at DESC OFFSET $1 LIMIT $2`)).
		WithArgs(0, 20).
		WillReturnRows(rows)

	reviews, total, err := r.List(context.Background(), repo.ReviewFilter{PendingOnly: true, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, reviews, 1)
	require.False(t, reviews[0].IsApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}
