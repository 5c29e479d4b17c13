package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type SettingsRepository interface {
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	CreateEmptyContactInfo(ctx context.Context) (*model.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error
	ListPolicies(ctx context.Context, activeOnly bool) ([]model.Policy, error)
	FindPolicyByType(ctx context.Context, policyType string) (*model.Policy, error)
	CreatePolicy(ctx context.Context, policy *model.Policy) (int64, error)
	UpdatePolicy(ctx context.Context, policy *model.Policy) error
	ListPublicSettings(ctx context.Context) ([]model.SiteSetting, error)
}

type postgresSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

func (r *postgresSettingsRepository) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	var info model.ContactInfo
	query := `SELECT * FROM contact_info ORDER BY id ASC LIMIT 1`
	err := r.db.GetContext(ctx, &info, query)

	if err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *postgresSettingsRepository) CreateEmptyContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	query := `INSERT INTO contact_info DEFAULT VALUES RETURNING id`
	var newID int64
	if err := r.db.QueryRowxContext(ctx, query).Scan(&newID); err != nil {
		return nil, err
	}

	var info model.ContactInfo
	if err := r.db.GetContext(ctx, &info, `SELECT * FROM contact_info WHERE id = $1`, newID); err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *postgresSettingsRepository) UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error {
	query := `
		UPDATE contact_info SET
			phone = $1, email = $2, telegram = $3, telegram_url = $4,
			address_uk = $5, address_en = $6, working_hours_uk = $7, working_hours_en = $8,
			updated_at = now()
		WHERE id = $9`

	_, err := r.db.ExecContext(ctx, query,
		info.Phone, info.Email, info.Telegram, info.TelegramURL,
		info.AddressUK, info.AddressEN, info.WorkingHoursUK, info.WorkingHoursEN,
		info.ID,
	)
	return err
}

func (r *postgresSettingsRepository) ListPolicies(ctx context.Context, activeOnly bool) ([]model.Policy, error) {
	query := `SELECT * FROM policies`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY type ASC`

	policies := []model.Policy{}
	if err := r.db.SelectContext(ctx, &policies, query); err != nil {
		return nil, err
	}

	return policies, nil
}

func (r *postgresSettingsRepository) FindPolicyByType(ctx context.Context, policyType string) (*model.Policy, error) {
	var policy model.Policy
	query := `SELECT * FROM policies WHERE type = $1`
	err := r.db.GetContext(ctx, &policy, query, policyType)

	if err != nil {
		return nil, err
	}

	return &policy, nil
}

func (r *postgresSettingsRepository) CreatePolicy(ctx context.Context, policy *model.Policy) (int64, error) {
	query := `
		INSERT INTO policies (type, title_uk, title_en, content_uk, content_en, is_active, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		policy.Type, policy.TitleUK, policy.TitleEN,
		policy.ContentUK, policy.ContentEN, policy.IsActive, policy.Version,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresSettingsRepository) UpdatePolicy(ctx context.Context, policy *model.Policy) error {
	query := `
		UPDATE policies SET
			title_uk = $1, title_en = $2, content_uk = $3, content_en = $4,
			is_active = $5, version = version + 1, updated_at = now()
		WHERE type = $6`

	_, err := r.db.ExecContext(ctx, query,
		policy.TitleUK, policy.TitleEN, policy.ContentUK, policy.ContentEN,
		policy.IsActive, policy.Type,
	)
	return err
}

func (r *postgresSettingsRepository) ListPublicSettings(ctx context.Context) ([]model.SiteSetting, error) {
	query := `SELECT * FROM site_settings WHERE is_public = TRUE ORDER BY category ASC, key ASC`

	settings := []model.SiteSetting{}
	if err := r.db.SelectContext(ctx, &settings, query); err != nil {
		return nil, err
	}

	return settings, nil
}
