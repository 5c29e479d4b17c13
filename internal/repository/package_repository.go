package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type PackageRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Package, error)
	ListHomepage(ctx context.Context, limit int) ([]model.Package, error)
	FindByID(ctx context.Context, id int64) (*model.Package, error)
	FindBySlug(ctx context.Context, slug string) (*model.Package, error)
	Create(ctx context.Context, pkg *model.Package) (int64, error)
	Update(ctx context.Context, pkg *model.Package) error
	Delete(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	CountApplications(ctx context.Context, packageID int64) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]model.Package, error)
}

type postgresPackageRepository struct {
	db *sqlx.DB
}

func NewPostgresPackageRepository(db *sqlx.DB) PackageRepository {
	return &postgresPackageRepository{db: db}
}

func (r *postgresPackageRepository) List(ctx context.Context, activeOnly bool) ([]model.Package, error) {
	query := `SELECT * FROM packages`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	packages := []model.Package{}
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *postgresPackageRepository) ListHomepage(ctx context.Context, limit int) ([]model.Package, error) {
	query := `SELECT * FROM packages WHERE is_active = TRUE ORDER BY is_popular DESC, sort_order ASC LIMIT $1`

	packages := []model.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, limit); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *postgresPackageRepository) FindByID(ctx context.Context, id int64) (*model.Package, error) {
	var pkg model.Package
	query := `SELECT * FROM packages WHERE id = $1`
	err := r.db.GetContext(ctx, &pkg, query, id)

	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *postgresPackageRepository) FindBySlug(ctx context.Context, slug string) (*model.Package, error) {
	var pkg model.Package
	query := `SELECT * FROM packages WHERE slug = $1`
	err := r.db.GetContext(ctx, &pkg, query, slug)

	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *postgresPackageRepository) Create(ctx context.Context, pkg *model.Package) (int64, error) {
	query := `
		INSERT INTO packages (
			name, slug, price_uk, price_en, duration_uk, duration_en,
			features_uk, features_en, advantages_uk, advantages_en,
			process_uk, process_en, support_uk, support_en,
			is_popular, is_active, sort_order
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		pkg.Name, pkg.Slug, pkg.PriceUK, pkg.PriceEN, pkg.DurationUK, pkg.DurationEN,
		pkg.FeaturesUK, pkg.FeaturesEN, pkg.AdvantagesUK, pkg.AdvantagesEN,
		pkg.ProcessUK, pkg.ProcessEN, pkg.SupportUK, pkg.SupportEN,
		pkg.IsPopular, pkg.IsActive, pkg.SortOrder,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresPackageRepository) Update(ctx context.Context, pkg *model.Package) error {
	query := `
		UPDATE packages SET
			name = $1, slug = $2, price_uk = $3, price_en = $4,
			duration_uk = $5, duration_en = $6, features_uk = $7, features_en = $8,
			advantages_uk = $9, advantages_en = $10, process_uk = $11, process_en = $12,
			support_uk = $13, support_en = $14, is_popular = $15, is_active = $16,
			sort_order = $17, updated_at = now()
		WHERE id = $18`

	_, err := r.db.ExecContext(ctx, query,
		pkg.Name, pkg.Slug, pkg.PriceUK, pkg.PriceEN, pkg.DurationUK, pkg.DurationEN,
		pkg.FeaturesUK, pkg.FeaturesEN, pkg.AdvantagesUK, pkg.AdvantagesEN,
		pkg.ProcessUK, pkg.ProcessEN, pkg.SupportUK, pkg.SupportEN,
		pkg.IsPopular, pkg.IsActive, pkg.SortOrder, pkg.ID,
	)
	return err
}

func (r *postgresPackageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM packages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresPackageRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE packages SET is_active = FALSE, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresPackageRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM packages WHERE slug = $1 AND id != $2)`
	err := r.db.GetContext(ctx, &exists, query, slug, excludeID)
	return exists, err
}

func (r *postgresPackageRepository) CountApplications(ctx context.Context, packageID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM quote_applications WHERE package_id = $1`
	err := r.db.GetContext(ctx, &count, query, packageID)
	return count, err
}

func (r *postgresPackageRepository) Search(ctx context.Context, search string, limit int) ([]model.Package, error) {
	var where []string
	var args []interface{}

	where = append(where, "is_active = TRUE")
	where = append(where, "(name ILIKE $1 OR support_uk ILIKE $1 OR support_en ILIKE $1)")
	args = append(args, "%"+search+"%")

	query := fmt.Sprintf(
		"SELECT * FROM packages WHERE %s ORDER BY is_popular DESC, sort_order ASC LIMIT $2",
		strings.Join(where, " AND "),
	)
	args = append(args, limit)

	packages := []model.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, err
	}

	return packages, nil
}
