package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type CategoryRepository interface {
	List(ctx context.Context, includeInactive bool) ([]model.DesignCategory, error)
	FindByID(ctx context.Context, id string) (*model.DesignCategory, error)
	Create(ctx context.Context, category *model.DesignCategory) error
	Update(ctx context.Context, category *model.DesignCategory) error
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
	CountDesigns(ctx context.Context, categoryID string) (int64, error)
}

type postgresCategoryRepository struct {
	db *sqlx.DB
}

func NewPostgresCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) List(ctx context.Context, includeInactive bool) ([]model.DesignCategory, error) {
	query := `SELECT * FROM design_categories`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	categories := []model.DesignCategory{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *postgresCategoryRepository) FindByID(ctx context.Context, id string) (*model.DesignCategory, error) {
	var category model.DesignCategory
	query := `SELECT * FROM design_categories WHERE id = $1`
	err := r.db.GetContext(ctx, &category, query, id)

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *postgresCategoryRepository) Create(ctx context.Context, category *model.DesignCategory) error {
	query := `
		INSERT INTO design_categories (id, slug, title_uk, title_en, description_uk, description_en, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Slug, category.TitleUK, category.TitleEN,
		category.DescriptionUK, category.DescriptionEN, category.IsActive, category.SortOrder,
	)
	return err
}

func (r *postgresCategoryRepository) Update(ctx context.Context, category *model.DesignCategory) error {
	query := `
		UPDATE design_categories SET
			slug = $1, title_uk = $2, title_en = $3, description_uk = $4,
			description_en = $5, is_active = $6, sort_order = $7, updated_at = now()
		WHERE id = $8`

	_, err := r.db.ExecContext(ctx, query,
		category.Slug, category.TitleUK, category.TitleEN,
		category.DescriptionUK, category.DescriptionEN, category.IsActive,
		category.SortOrder, category.ID,
	)
	return err
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM design_categories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresCategoryRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM design_categories WHERE slug = $1 AND id != $2)`
	err := r.db.GetContext(ctx, &exists, query, slug, excludeID)
	return exists, err
}

func (r *postgresCategoryRepository) CountDesigns(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM designs WHERE category_id = $1`
	err := r.db.GetContext(ctx, &count, query, categoryID)
	return count, err
}
