package model

import "time"

type User struct {
	ID                int64      `db:"id" json:"id"`
	Email             string     `db:"email" json:"email"`
	Name              string     `db:"name" json:"name"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	IsAdmin           bool       `db:"is_admin" json:"is_admin"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	AvatarURL         *string    `db:"avatar_url" json:"avatar_url,omitempty"`
	PasswordChangedAt *time.Time `db:"password_changed_at" json:"-"`
	LastLogin         *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}
