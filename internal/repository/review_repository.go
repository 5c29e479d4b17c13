package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type ReviewFilter struct {
	ApprovedOnly bool
	PendingOnly  bool
	FeaturedOnly bool
	Skip         int
	Limit        int
}

type ReviewRepository interface {
	List(ctx context.Context, filter ReviewFilter) ([]model.Review, int64, error)
	FindByID(ctx context.Context, id int64) (*model.Review, error)
	Create(ctx context.Context, review *model.Review) (int64, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id int64) error
	Approve(ctx context.Context, id int64, approvedByID int64, at time.Time) error
	ExistsForUser(ctx context.Context, userID int64) (bool, error)
	ExistsForEmail(ctx context.Context, email string) (bool, error)
	CountByApproval(ctx context.Context, approved bool) (int64, error)
	ListPending(ctx context.Context, limit int) ([]model.Review, error)
}

type postgresReviewRepository struct {
	db *sqlx.DB
}

func NewPostgresReviewRepository(db *sqlx.DB) ReviewRepository {
	return &postgresReviewRepository{db: db}
}

func (r *postgresReviewRepository) List(ctx context.Context, filter ReviewFilter) ([]model.Review, int64, error) {
	var where string
	switch {
	case filter.ApprovedOnly:
		where = " WHERE is_approved = TRUE"
	case filter.PendingOnly:
		where = " WHERE is_approved = FALSE"
	}
	if filter.FeaturedOnly {
		if where == "" {
			where = " WHERE is_featured = TRUE"
		} else {
			where += " AND is_featured = TRUE"
		}
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM reviews"+where); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM reviews" + where + " ORDER BY sort_order ASC, created_at DESC OFFSET $1 LIMIT $2"

	reviews := []model.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, filter.Skip, filter.Limit); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *postgresReviewRepository) FindByID(ctx context.Context, id int64) (*model.Review, error) {
	var review model.Review
	query := `SELECT * FROM reviews WHERE id = $1`
	err := r.db.GetContext(ctx, &review, query, id)

	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) (int64, error) {
	query := `
		INSERT INTO reviews (
			user_id, text_uk, text_en, rating, company, author_name, author_email,
			is_approved, approved_at, is_featured, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		review.UserID, review.TextUK, review.TextEN, review.Rating, review.Company,
		review.AuthorName, review.AuthorEmail, review.IsApproved, review.ApprovedAt,
		review.IsFeatured, review.SortOrder,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews SET
			text_uk = $1, text_en = $2, rating = $3, company = $4,
			is_featured = $5, sort_order = $6, updated_at = now()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		review.TextUK, review.TextEN, review.Rating, review.Company,
		review.IsFeatured, review.SortOrder, review.ID,
	)
	return err
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresReviewRepository) Approve(ctx context.Context, id int64, approvedByID int64, at time.Time) error {
	query := `UPDATE reviews SET is_approved = TRUE, approved_at = $1, approved_by_id = $2, updated_at = now() WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, at, approvedByID, id)
	return err
}

func (r *postgresReviewRepository) ExistsForUser(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1)`
	err := r.db.GetContext(ctx, &exists, query, userID)
	return exists, err
}

func (r *postgresReviewRepository) ExistsForEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE author_email = $1)`
	err := r.db.GetContext(ctx, &exists, query, email)
	return exists, err
}

func (r *postgresReviewRepository) CountByApproval(ctx context.Context, approved bool) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM reviews WHERE is_approved = $1`
	err := r.db.GetContext(ctx, &count, query, approved)
	return count, err
}

func (r *postgresReviewRepository) ListPending(ctx context.Context, limit int) ([]model.Review, error) {
	query := `SELECT * FROM reviews WHERE is_approved = FALSE ORDER BY created_at DESC LIMIT $1`

	reviews := []model.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, limit); err != nil {
		return nil, err
	}

	return reviews, nil
}
