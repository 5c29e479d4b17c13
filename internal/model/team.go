package model

import "time"

type TeamMember struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	RoleUK     string    `db:"role_uk" json:"role_uk"`
	RoleEN     string    `db:"role_en" json:"role_en"`
	Skills     *string   `db:"skills" json:"skills,omitempty"`
	Avatar     *string   `db:"avatar" json:"avatar,omitempty"`
	Initials   *string   `db:"initials" json:"initials,omitempty"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
