package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type FileFilter struct {
	Category *string
	IsUsed   *bool
	Skip     int
	Limit    int
}

type FileRepository interface {
	List(ctx context.Context, filter FileFilter) ([]model.UploadedFile, int64, error)
	FindByID(ctx context.Context, id int64) (*model.UploadedFile, error)
	Create(ctx context.Context, file *model.UploadedFile) (int64, error)
	UpdateMeta(ctx context.Context, id int64, altText *string, category *string, isUsed *bool) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type postgresFileRepository struct {
	db *sqlx.DB
}

func NewPostgresFileRepository(db *sqlx.DB) FileRepository {
	return &postgresFileRepository{db: db}
}

func (r *postgresFileRepository) List(ctx context.Context, filter FileFilter) ([]model.UploadedFile, int64, error) {
	var where []string
	var args []interface{}
	argID := 1

	if filter.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", argID))
		args = append(args, *filter.Category)
		argID++
	}
	if filter.IsUsed != nil {
		where = append(where, fmt.Sprintf("is_used = $%d", argID))
		args = append(args, *filter.IsUsed)
		argID++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM uploaded_files"+whereClause, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT * FROM uploaded_files%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d", whereClause, argID, argID+1)
	args = append(args, filter.Skip, filter.Limit)

	files := []model.UploadedFile{}
	if err := r.db.SelectContext(ctx, &files, query, args...); err != nil {
		return nil, 0, err
	}

	return files, total, nil
}

func (r *postgresFileRepository) FindByID(ctx context.Context, id int64) (*model.UploadedFile, error) {
	var file model.UploadedFile
	query := `SELECT * FROM uploaded_files WHERE id = $1`
	err := r.db.GetContext(ctx, &file, query, id)

	if err != nil {
		return nil, err
	}

	return &file, nil
}

func (r *postgresFileRepository) Create(ctx context.Context, file *model.UploadedFile) (int64, error) {
	query := `
		INSERT INTO uploaded_files (
			uploaded_by_id, original_filename, stored_filename, file_path, file_url,
			file_size, mime_type, file_extension, category, alt_text, hash, thumbnail_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		file.UploadedByID, file.OriginalFilename, file.StoredFilename, file.FilePath,
		file.FileURL, file.FileSize, file.MimeType, file.FileExtension,
		file.Category, file.AltText, file.Hash, file.ThumbnailURL,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresFileRepository) UpdateMeta(ctx context.Context, id int64, altText *string, category *string, isUsed *bool) error {
	var setClauses []string
	var args []interface{}
	argID := 1

	if altText != nil {
		setClauses = append(setClauses, fmt.Sprintf("alt_text = $%d", argID))
		args = append(args, *altText)
		argID++
	}
	if category != nil {
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", argID))
		args = append(args, *category)
		argID++
	}
	if isUsed != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_used = $%d", argID))
		args = append(args, *isUsed)
		argID++
	}

	if len(setClauses) == 0 {
		return nil
	}
	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf("UPDATE uploaded_files SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argID)
	args = append(args, id)

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresFileRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM uploaded_files WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresFileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM uploaded_files`)
	return count, err
}
