package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type EmailRepository interface {
	FindTemplateByName(ctx context.Context, name string) (*model.EmailTemplate, error)
	UpsertTemplate(ctx context.Context, tpl *model.EmailTemplate) error
	CreateLog(ctx context.Context, entry *model.EmailLog) (int64, error)
	MarkLogSent(ctx context.Context, id int64, at time.Time) error
	MarkLogFailed(ctx context.Context, id int64, errorMessage string, retryCount int) error
}

type postgresEmailRepository struct {
	db *sqlx.DB
}

func NewPostgresEmailRepository(db *sqlx.DB) EmailRepository {
	return &postgresEmailRepository{db: db}
}

func (r *postgresEmailRepository) FindTemplateByName(ctx context.Context, name string) (*model.EmailTemplate, error) {
	var tpl model.EmailTemplate
	query := `SELECT * FROM email_templates WHERE name = $1 AND is_active = TRUE`
	err := r.db.GetContext(ctx, &tpl, query, name)

	if err != nil {
		return nil, err
	}

	return &tpl, nil
}

func (r *postgresEmailRepository) UpsertTemplate(ctx context.Context, tpl *model.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (name, subject_uk, subject_en, content_uk, content_en, variables, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			subject_uk = EXCLUDED.subject_uk, subject_en = EXCLUDED.subject_en,
			content_uk = EXCLUDED.content_uk, content_en = EXCLUDED.content_en,
			variables = EXCLUDED.variables, is_active = EXCLUDED.is_active,
			updated_at = now()`

	_, err := r.db.ExecContext(ctx, query,
		tpl.Name, tpl.SubjectUK, tpl.SubjectEN, tpl.ContentUK, tpl.ContentEN,
		tpl.Variables, tpl.IsActive,
	)
	return err
}

func (r *postgresEmailRepository) CreateLog(ctx context.Context, entry *model.EmailLog) (int64, error) {
	query := `
		INSERT INTO email_logs (template_name, recipient_email, subject, content, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		entry.TemplateName, entry.RecipientEmail, entry.Subject, entry.Content, entry.Status,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresEmailRepository) MarkLogSent(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE email_logs SET status = $1, sent_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, model.EmailStatusSent, at, id)
	return err
}

func (r *postgresEmailRepository) MarkLogFailed(ctx context.Context, id int64, errorMessage string, retryCount int) error {
	query := `UPDATE email_logs SET status = $1, error_message = $2, retry_count = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, model.EmailStatusFailed, errorMessage, retryCount, id)
	return err
}
