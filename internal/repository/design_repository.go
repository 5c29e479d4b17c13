package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type DesignFilter struct {
	CategoryID    *string
	Search        *string
	FeaturedOnly  bool
	PublishedOnly bool
	Skip          int
	Limit         int
}

type DesignRepository interface {
	List(ctx context.Context, filter DesignFilter) ([]model.Design, int64, error)
	FindByID(ctx context.Context, id int64) (*model.Design, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Design, error)
	Create(ctx context.Context, design *model.Design) (int64, error)
	Update(ctx context.Context, design *model.Design) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	BumpViews(ctx context.Context, ids []int64) error
	Search(ctx context.Context, query string, categoryID *string, limit int) ([]model.Design, error)
	CountPublished(ctx context.Context) (int64, error)
}

type postgresDesignRepository struct {
	db *sqlx.DB
}

func NewPostgresDesignRepository(db *sqlx.DB) DesignRepository {
	return &postgresDesignRepository{db: db}
}

func (r *postgresDesignRepository) List(ctx context.Context, filter DesignFilter) ([]model.Design, int64, error) {
	var where []string
	var args []interface{}
	argID := 1

	if filter.PublishedOnly {
		where = append(where, "is_published = TRUE")
	}
	if filter.FeaturedOnly {
		where = append(where, "is_featured = TRUE")
	}
	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", argID))
		args = append(args, *filter.CategoryID)
		argID++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf("(title_uk ILIKE $%d OR title_en ILIKE $%d OR description_uk ILIKE $%d OR description_en ILIKE $%d)", argID, argID, argID, argID))
		args = append(args, "%"+*filter.Search+"%")
		argID++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM designs" + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT * FROM designs%s ORDER BY is_featured DESC, sort_order ASC, created_at DESC OFFSET $%d LIMIT $%d",
		whereClause, argID, argID+1,
	)
	args = append(args, filter.Skip, filter.Limit)

	designs := []model.Design{}
	if err := r.db.SelectContext(ctx, &designs, query, args...); err != nil {
		return nil, 0, err
	}

	return designs, total, nil
}

func (r *postgresDesignRepository) FindByID(ctx context.Context, id int64) (*model.Design, error) {
	var design model.Design
	query := `SELECT * FROM designs WHERE id = $1`
	err := r.db.GetContext(ctx, &design, query, id)

	if err != nil {
		return nil, err
	}

	return &design, nil
}

func (r *postgresDesignRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.Design, error) {
	var design model.Design
	query := `SELECT * FROM designs WHERE slug = $1`
	if publishedOnly {
		query += ` AND is_published = TRUE`
	}
	err := r.db.GetContext(ctx, &design, query, slug)

	if err != nil {
		return nil, err
	}

	return &design, nil
}

func (r *postgresDesignRepository) Create(ctx context.Context, design *model.Design) (int64, error) {
	query := `
		INSERT INTO designs (
			title, slug, title_uk, title_en, description_uk, description_en,
			metrics_uk, metrics_en, category_id, technology, image_url, figma_url,
			live_url, show_live_demo, is_published, is_featured, sort_order
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		design.Title, design.Slug, design.TitleUK, design.TitleEN,
		design.DescriptionUK, design.DescriptionEN, design.MetricsUK, design.MetricsEN,
		design.CategoryID, design.Technology, design.ImageURL, design.FigmaURL,
		design.LiveURL, design.ShowLiveDemo, design.IsPublished, design.IsFeatured,
		design.SortOrder,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresDesignRepository) Update(ctx context.Context, design *model.Design) error {
	query := `
		UPDATE designs SET
			title = $1, slug = $2, title_uk = $3, title_en = $4,
			description_uk = $5, description_en = $6, metrics_uk = $7, metrics_en = $8,
			category_id = $9, technology = $10, image_url = $11, figma_url = $12,
			live_url = $13, show_live_demo = $14, is_published = $15, is_featured = $16,
			sort_order = $17, updated_at = now()
		WHERE id = $18`

	_, err := r.db.ExecContext(ctx, query,
		design.Title, design.Slug, design.TitleUK, design.TitleEN,
		design.DescriptionUK, design.DescriptionEN, design.MetricsUK, design.MetricsEN,
		design.CategoryID, design.Technology, design.ImageURL, design.FigmaURL,
		design.LiveURL, design.ShowLiveDemo, design.IsPublished, design.IsFeatured,
		design.SortOrder, design.ID,
	)
	return err
}

func (r *postgresDesignRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM designs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresDesignRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM designs WHERE slug = $1 AND id != $2)`
	err := r.db.GetContext(ctx, &exists, query, slug, excludeID)
	return exists, err
}

func (r *postgresDesignRepository) BumpViews(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE designs SET views_count = views_count + 1 WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	return err
}

func (r *postgresDesignRepository) Search(ctx context.Context, search string, categoryID *string, limit int) ([]model.Design, error) {
	var where []string
	var args []interface{}
	argID := 1

	where = append(where, "is_published = TRUE")
	where = append(where, fmt.Sprintf("(title_uk ILIKE $%d OR title_en ILIKE $%d OR description_uk ILIKE $%d OR description_en ILIKE $%d)", argID, argID, argID, argID))
	args = append(args, "%"+search+"%")
	argID++

	if categoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", argID))
		args = append(args, *categoryID)
		argID++
	}

	query := fmt.Sprintf(
		"SELECT * FROM designs WHERE %s ORDER BY is_featured DESC, views_count DESC LIMIT $%d",
		strings.Join(where, " AND "), argID,
	)
	args = append(args, limit)

	designs := []model.Design{}
	if err := r.db.SelectContext(ctx, &designs, query, args...); err != nil {
		return nil, err
	}

	return designs, nil
}

func (r *postgresDesignRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM designs WHERE is_published = TRUE`)
	return count, err
}
