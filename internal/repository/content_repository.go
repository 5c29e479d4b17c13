package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type ContentRepository interface {
	GetAbout(ctx context.Context) (*model.AboutContent, error)
	CreateEmptyAbout(ctx context.Context) (*model.AboutContent, error)
	UpdateAbout(ctx context.Context, about *model.AboutContent) error
	ListBlocks(ctx context.Context) ([]model.ContentBlock, error)
	FindBlockByKey(ctx context.Context, key string) (*model.ContentBlock, error)
	CreateBlock(ctx context.Context, block *model.ContentBlock) (int64, error)
	UpdateBlock(ctx context.Context, block *model.ContentBlock) error
	DeleteBlock(ctx context.Context, key string) error
}

type postgresContentRepository struct {
	db *sqlx.DB
}

func NewPostgresContentRepository(db *sqlx.DB) ContentRepository {
	return &postgresContentRepository{db: db}
}

func (r *postgresContentRepository) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	var about model.AboutContent
	query := `SELECT * FROM about_content ORDER BY id ASC LIMIT 1`
	err := r.db.GetContext(ctx, &about, query)

	if err != nil {
		return nil, err
	}

	return &about, nil
}

func (r *postgresContentRepository) CreateEmptyAbout(ctx context.Context) (*model.AboutContent, error) {
	query := `INSERT INTO about_content DEFAULT VALUES RETURNING id`
	var newID int64
	if err := r.db.QueryRowxContext(ctx, query).Scan(&newID); err != nil {
		return nil, err
	}

	var about model.AboutContent
	if err := r.db.GetContext(ctx, &about, `SELECT * FROM about_content WHERE id = $1`, newID); err != nil {
		return nil, err
	}

	return &about, nil
}

func (r *postgresContentRepository) UpdateAbout(ctx context.Context, about *model.AboutContent) error {
	query := `
		UPDATE about_content SET
			hero_title_uk = $1, hero_title_en = $2, hero_subtitle_uk = $3, hero_subtitle_en = $4,
			mission_uk = $5, mission_en = $6, vision_uk = $7, vision_en = $8,
			why_choose_us_uk = $9, why_choose_us_en = $10,
			cta_title_uk = $11, cta_title_en = $12, cta_description_uk = $13, cta_description_en = $14,
			updated_at = now()
		WHERE id = $15`

	_, err := r.db.ExecContext(ctx, query,
		about.HeroTitleUK, about.HeroTitleEN, about.HeroSubtitleUK, about.HeroSubtitleEN,
		about.MissionUK, about.MissionEN, about.VisionUK, about.VisionEN,
		about.WhyChooseUsUK, about.WhyChooseUsEN,
		about.CTATitleUK, about.CTATitleEN, about.CTADescriptionUK, about.CTADescriptionEN,
		about.ID,
	)
	return err
}

func (r *postgresContentRepository) ListBlocks(ctx context.Context) ([]model.ContentBlock, error) {
	query := `SELECT * FROM content WHERE is_active = TRUE ORDER BY key ASC`

	blocks := []model.ContentBlock{}
	if err := r.db.SelectContext(ctx, &blocks, query); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *postgresContentRepository) FindBlockByKey(ctx context.Context, key string) (*model.ContentBlock, error) {
	var block model.ContentBlock
	query := `SELECT * FROM content WHERE key = $1`
	err := r.db.GetContext(ctx, &block, query, key)

	if err != nil {
		return nil, err
	}

	return &block, nil
}

func (r *postgresContentRepository) CreateBlock(ctx context.Context, block *model.ContentBlock) (int64, error) {
	query := `
		INSERT INTO content (key, content_uk, content_en, description, is_active)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		block.Key, block.ContentUK, block.ContentEN, block.Description, block.IsActive,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresContentRepository) UpdateBlock(ctx context.Context, block *model.ContentBlock) error {
	query := `
		UPDATE content SET
			content_uk = $1, content_en = $2, description = $3, is_active = $4, updated_at = now()
		WHERE key = $5`

	_, err := r.db.ExecContext(ctx, query,
		block.ContentUK, block.ContentEN, block.Description, block.IsActive, block.Key,
	)
	return err
}

func (r *postgresContentRepository) DeleteBlock(ctx context.Context, key string) error {
	query := `DELETE FROM content WHERE key = $1`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}
