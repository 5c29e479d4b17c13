package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type ApplicationFilter struct {
	Status *string
	Search *string
	Skip   int
	Limit  int
}

type QuoteRepository interface {
	List(ctx context.Context, filter ApplicationFilter) ([]model.QuoteApplication, int64, error)
	FindByID(ctx context.Context, id int64) (*model.QuoteApplication, error)
	Create(ctx context.Context, app *model.QuoteApplication) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string, processedAt *time.Time, responseText *string) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.QuoteApplication, error)
}

type ConsultationRepository interface {
	List(ctx context.Context, filter ApplicationFilter) ([]model.ConsultationApplication, int64, error)
	FindByID(ctx context.Context, id int64) (*model.ConsultationApplication, error)
	Create(ctx context.Context, app *model.ConsultationApplication) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string, scheduledAt *time.Time, notes *string) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]model.ConsultationApplication, error)
}

type postgresQuoteRepository struct {
	db *sqlx.DB
}

func NewPostgresQuoteRepository(db *sqlx.DB) QuoteRepository {
	return &postgresQuoteRepository{db: db}
}

func (r *postgresQuoteRepository) List(ctx context.Context, filter ApplicationFilter) ([]model.QuoteApplication, int64, error) {
	var where []string
	var args []interface{}
	argID := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR description ILIKE $%d)", argID, argID, argID))
		args = append(args, "%"+*filter.Search+"%")
		argID++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quote_applications"+whereClause, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT * FROM quote_applications%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d", whereClause, argID, argID+1)
	args = append(args, filter.Skip, filter.Limit)

	apps := []model.QuoteApplication{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *postgresQuoteRepository) FindByID(ctx context.Context, id int64) (*model.QuoteApplication, error) {
	var app model.QuoteApplication
	query := `SELECT * FROM quote_applications WHERE id = $1`
	err := r.db.GetContext(ctx, &app, query, id)

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *postgresQuoteRepository) Create(ctx context.Context, app *model.QuoteApplication) (int64, error) {
	query := `
		INSERT INTO quote_applications (name, email, phone, project_type, budget, description, package_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		app.Name, app.Email, app.Phone, app.ProjectType, app.Budget, app.Description, app.PackageID,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresQuoteRepository) UpdateStatus(ctx context.Context, id int64, status string, processedAt *time.Time, responseText *string) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
	args = append(args, status)
	argID++

	if processedAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("processed_at = $%d", argID))
		args = append(args, *processedAt)
		argID++
	}
	if responseText != nil {
		setClauses = append(setClauses, fmt.Sprintf("response_text = $%d", argID))
		args = append(args, *responseText)
		argID++
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE quote_applications SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresQuoteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM quote_applications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresQuoteRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quote_applications WHERE status = $1`, status)
	return count, err
}

func (r *postgresQuoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quote_applications`)
	return count, err
}

func (r *postgresQuoteRepository) ListRecent(ctx context.Context, limit int) ([]model.QuoteApplication, error) {
	query := `SELECT * FROM quote_applications ORDER BY created_at DESC LIMIT $1`

	apps := []model.QuoteApplication{}
	if err := r.db.SelectContext(ctx, &apps, query, limit); err != nil {
		return nil, err
	}

	return apps, nil
}

type postgresConsultationRepository struct {
	db *sqlx.DB
}

func NewPostgresConsultationRepository(db *sqlx.DB) ConsultationRepository {
	return &postgresConsultationRepository{db: db}
}

func (r *postgresConsultationRepository) List(ctx context.Context, filter ApplicationFilter) ([]model.ConsultationApplication, int64, error) {
	var where []string
	var args []interface{}
	argID := 1

	if filter.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR phone ILIKE $%d)", argID, argID, argID))
		args = append(args, "%"+*filter.Search+"%")
		argID++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM consultation_applications"+whereClause, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT * FROM consultation_applications%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d", whereClause, argID, argID+1)
	args = append(args, filter.Skip, filter.Limit)

	apps := []model.ConsultationApplication{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *postgresConsultationRepository) FindByID(ctx context.Context, id int64) (*model.ConsultationApplication, error) {
	var app model.ConsultationApplication
	query := `SELECT * FROM consultation_applications WHERE id = $1`
	err := r.db.GetContext(ctx, &app, query, id)

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (r *postgresConsultationRepository) Create(ctx context.Context, app *model.ConsultationApplication) (int64, error) {
	query := `
		INSERT INTO consultation_applications (first_name, last_name, phone, telegram, message)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		app.FirstName, app.LastName, app.Phone, app.Telegram, app.Message,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string, scheduledAt *time.Time, notes *string) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	setClauses = append(setClauses, fmt.Sprintf("status = $%d", argID))
	args = append(args, status)
	argID++

	if scheduledAt != nil {
		setClauses = append(setClauses, fmt.Sprintf("consultation_scheduled_at = $%d", argID))
		args = append(args, *scheduledAt)
		argID++
	}
	if notes != nil {
		setClauses = append(setClauses, fmt.Sprintf("notes = $%d", argID))
		args = append(args, *notes)
		argID++
	}
	if status == model.ApplicationStatusCompleted {
		setClauses = append(setClauses, "consultation_completed_at = now()")
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE consultation_applications SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresConsultationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM consultation_applications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresConsultationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM consultation_applications WHERE status = $1`, status)
	return count, err
}

func (r *postgresConsultationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM consultation_applications`)
	return count, err
}

func (r *postgresConsultationRepository) ListRecent(ctx context.Context, limit int) ([]model.ConsultationApplication, error) {
	query := `SELECT * FROM consultation_applications ORDER BY created_at DESC LIMIT $1`

	apps := []model.ConsultationApplication{}
	if err := r.db.SelectContext(ctx, &apps, query, limit); err != nil {
		return nil, err
	}

	return apps, nil
}
