package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"studio-api/internal/model"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "studio-api/migrations"
)

type DesignRepositoryIntegrationTestSuite struct {
	suite.Suite
	db           *sqlx.DB
	designRepo   DesignRepository
	categoryRepo CategoryRepository
	pgc          *postgres.PostgresContainer
	ctx          context.Context
}

func (s *DesignRepositoryIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgc, err := postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %s", err)
	}
	s.pgc = pgc

	connStr, err := pgc.ConnectionString(s.ctx, "sslmode=disable")
	assert.NoError(s.T(), err)

	db, err := sqlx.Connect("pgx", connStr)
	assert.NoError(s.T(), err)
	s.db = db

	err = goose.Up(db.DB, "../../migrations")
	assert.NoError(s.T(), err)

	s.designRepo = NewPostgresDesignRepository(s.db)
	s.categoryRepo = NewPostgresCategoryRepository(s.db)

	err = s.categoryRepo.Create(s.ctx, &model.DesignCategory{
		ID:       "web",
		Slug:     "web",
		TitleUK:  "Веб",
		TitleEN:  "Web",
		IsActive: true,
	})
	assert.NoError(s.T(), err)
}

func (s *DesignRepositoryIntegrationTestSuite) TearDownSuite() {
	s.db.Close()
	if err := s.pgc.Terminate(s.ctx); err != nil {
		log.Fatalf("failed to terminate pg container: %s", err)
	}
}

func (s *DesignRepositoryIntegrationTestSuite) TestDesignRepository_CreateAndFindBySlug() {
	design := &model.Design{
		Title:       "Corporate Site",
		Slug:        "corporate-site",
		TitleUK:     "Корпоративний сайт",
		TitleEN:     "Corporate Site",
		CategoryID:  "web",
		IsPublished: true,
	}

	newID, err := s.designRepo.Create(s.ctx, design)
	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), newID)

	found, err := s.designRepo.FindBySlug(s.ctx, "corporate-site", true)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), found)
	assert.Equal(s.T(), newID, found.ID)
	assert.Equal(s.T(), "web", found.CategoryID)
}

func (s *DesignRepositoryIntegrationTestSuite) TestDesignRepository_BumpViews() {
	design := &model.Design{
		Title:       "Shop",
		Slug:        "shop",
		TitleUK:     "Магазин",
		TitleEN:     "Shop",
		CategoryID:  "web",
		IsPublished: true,
	}

	newID, err := s.designRepo.Create(s.ctx, design)
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.designRepo.BumpViews(s.ctx, []int64{newID}))
	assert.NoError(s.T(), s.designRepo.BumpViews(s.ctx, []int64{newID}))

	found, err := s.designRepo.FindByID(s.ctx, newID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), found.ViewsCount)
}

func (s *DesignRepositoryIntegrationTestSuite) TestDesignRepository_FindBySlug_UnpublishedHidden() {
	design := &model.Design{
		Title:      "Draft",
		Slug:       "draft",
		TitleUK:    "Чернетка",
		TitleEN:    "Draft",
		CategoryID: "web",
	}

	_, err := s.designRepo.Create(s.ctx, design)
	assert.NoError(s.T(), err)

	found, err := s.designRepo.FindBySlug(s.ctx, "draft", true)
	assert.Error(s.T(), err)
	assert.Nil(s.T(), found)
}

func TestDesignRepositoryIntegration(t *testing.T) {
	if os.Getenv("DOCKER_HOST") == "" {
		t.Skip("Docker is not available, skipping integration test.")
	}
	suite.Run(t, new(DesignRepositoryIntegrationTestSuite))
}
