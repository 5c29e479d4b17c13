package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"studio-api/internal/model"
)

type TeamRepository interface {
	List(ctx context.Context, includeInactive bool) ([]model.TeamMember, error)
	FindByID(ctx context.Context, id int64) (*model.TeamMember, error)
	Create(ctx context.Context, member *model.TeamMember) (int64, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetOrder(ctx context.Context, id int64, orderIndex int) error
	MaxOrderIndex(ctx context.Context) (int, error)
	ActiveNameExists(ctx context.Context, name string, excludeID int64) (bool, error)
}

type postgresTeamRepository struct {
	db *sqlx.DB
}

func NewPostgresTeamRepository(db *sqlx.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) List(ctx context.Context, includeInactive bool) ([]model.TeamMember, error) {
	query := `SELECT * FROM team_members`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY order_index ASC, id ASC`

	members := []model.TeamMember{}
	if err := r.db.SelectContext(ctx, &members, query); err != nil {
		return nil, err
	}

	return members, nil
}

func (r *postgresTeamRepository) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	var member model.TeamMember
	query := `SELECT * FROM team_members WHERE id = $1`
	err := r.db.GetContext(ctx, &member, query, id)

	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (r *postgresTeamRepository) Create(ctx context.Context, member *model.TeamMember) (int64, error) {
	query := `
		INSERT INTO team_members (name, role_uk, role_en, skills, avatar, initials, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var newID int64
	err := r.db.QueryRowxContext(ctx, query,
		member.Name, member.RoleUK, member.RoleEN, member.Skills,
		member.Avatar, member.Initials, member.OrderIndex, member.IsActive,
	).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, member *model.TeamMember) error {
	query := `
		UPDATE team_members SET
			name = $1, role_uk = $2, role_en = $3, skills = $4, avatar = $5,
			initials = $6, order_index = $7, is_active = $8, updated_at = now()
		WHERE id = $9`

	_, err := r.db.ExecContext(ctx, query,
		member.Name, member.RoleUK, member.RoleEN, member.Skills, member.Avatar,
		member.Initials, member.OrderIndex, member.IsActive, member.ID,
	)
	return err
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM team_members WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postgresTeamRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE team_members SET is_active = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, active, id)
	return err
}

func (r *postgresTeamRepository) SetOrder(ctx context.Context, id int64, orderIndex int) error {
	query := `UPDATE team_members SET order_index = $1, updated_at = now() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, orderIndex, id)
	return err
}

func (r *postgresTeamRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var max int
	err := r.db.GetContext(ctx, &max, `SELECT COALESCE(MAX(order_index), 0) FROM team_members`)
	return max, err
}

func (r *postgresTeamRepository) ActiveNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE name = $1 AND is_active = TRUE AND id != $2)`
	err := r.db.GetContext(ctx, &exists, query, name, excludeID)
	return exists, err
}
