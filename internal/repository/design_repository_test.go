package repository_test

import (
	"context"
	"regexp"
	"testing"

	repo "studio-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestPostgresDesignRepository_SlugExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDesignRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM designs WHERE slug = $1 AND id != $2)`)).
		WithArgs("landing-page", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := r.SlugExists(context.Background(), "landing-page", 0)
	require.NoError(t, err)
	require.True(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDesignRepository_BumpViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDesignRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE designs SET views_count = views_count + 1 WHERE id IN (?, ?)`)).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, r.BumpViews(context.Background(), []int64{1, 2}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDesignRepository_BumpViews_EmptyIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDesignRepository(sqlxDB)

	require.NoError(t, r.BumpViews(context.Background(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDesignRepository_FindBySlug_PublishedOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresDesignRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "title", "slug", "title_uk", "title_en", "category_id", "is_published"}).
		AddRow(int64(5), "Landing", "landing", "Лендінг", "Landing", "web", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM designs WHERE slug = $1 AND is_published = TRUE`)).
		WithArgs("landing").WillReturnRows(rows)

	d, err := r.FindBySlug(context.Background(), "landing", true)
	require.NoError(t, err)
	require.Equal(t, int64(5), d.ID)
	require.True(t, d.IsPublished)
	require.NoError(t, mock.ExpectationsWereMet())
}
