package model

import "time"

type Review struct {
	ID           int64      `db:"id" json:"id"`
	UserID       *int64     `db:"user_id" json:"user_id,omitempty"`
	TextUK       string     `db:"text_uk" json:"text_uk"`
	TextEN       string     `db:"text_en" json:"text_en"`
	Rating       int        `db:"rating" json:"rating"`
	Company      *string    `db:"company" json:"company,omitempty"`
	AuthorName   *string    `db:"author_name" json:"author_name,omitempty"`
	AuthorEmail  *string    `db:"author_email" json:"author_email,omitempty"`
	IsApproved   bool       `db:"is_approved" json:"is_approved"`
	ApprovedAt   *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	ApprovedByID *int64     `db:"approved_by_id" json:"approved_by_id,omitempty"`
	IsFeatured   bool       `db:"is_featured" json:"is_featured"`
	SortOrder    int        `db:"sort_order" json:"sort_order"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
