package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type FAQRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.FAQItem, error)
	FindByID(ctx context.Context, id int64) (*model.FAQItem, error)
	Create(ctx context.Context, item *model.FAQItem) (int64, error)
	Update(ctx context.Context, item *model.FAQItem) error
	Delete(ctx context.Context, id int64) error
}

type postgresFAQRepository struct {
	db *sqlx.DB
}

func NewPostgresFAQRepository(db *sqlx.DB) FAQRepository {
	return &postgresFAQRepository{db: db}
}

func (r *postgresFAQRepository) List(ctx context.Context, activeOnly bool) ([]model.FAQItem, error) {
	query := `SELECT * FROM faq`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	items := []model.FAQItem{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *postgresFAQRepository) FindByID(ctx context.Context, id int64) (*model.FAQItem, error) {
	var item model.FAQItem
	query := `SELECT * FROM faq WHERE id = $1`
	err := r.db.GetContext(ctx, &item, query, id)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *postgresFAQRepository) Create(ctx context.Context, item *model.FAQItem) (int64, error) {
	query := `
		INSERT INTO faq (question_uk, question_en, answer_uk, answer_en, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		item.QuestionUK, item.QuestionEN, item.AnswerUK, item.AnswerEN,
		item.IsActive, item.SortOrder,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresFAQRepository) Update(ctx context.Context, item *model.FAQItem) error {
	query := `
		UPDATE faq SET
			question_uk = $1, question_en = $2, answer_uk = $3, answer_en = $4,
			is_active = $5, sort_order = $6, updated_at = now()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		item.QuestionUK, item.QuestionEN, item.AnswerUK, item.AnswerEN,
		item.IsActive, item.SortOrder, item.ID,
	)
	return err
}

func (r *postgresFAQRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM faq WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
