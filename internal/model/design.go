package model

import "time"

type DesignCategory struct {
	ID            string    `db:"id" json:"id"`
	Slug          string    `db:"slug" json:"slug"`
	TitleUK       string    `db:"title_uk" json:"title_uk"`
	TitleEN       string    `db:"title_en" json:"title_en"`
	DescriptionUK *string   `db:"description_uk" json:"description_uk,omitempty"`
	DescriptionEN *string   `db:"description_en" json:"description_en,omitempty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type Design struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Slug          string    `db:"slug" json:"slug"`
	TitleUK       string    `db:"title_uk" json:"title_uk"`
	TitleEN       string    `db:"title_en" json:"title_en"`
	DescriptionUK *string   `db:"description_uk" json:"description_uk,omitempty"`
	DescriptionEN *string   `db:"description_en" json:"description_en,omitempty"`
	MetricsUK     *string   `db:"metrics_uk" json:"metrics_uk,omitempty"`
	MetricsEN     *string   `db:"metrics_en" json:"metrics_en,omitempty"`
	CategoryID    string    `db:"category_id" json:"category_id"`
	Technology    *string   `db:"technology" json:"technology,omitempty"`
	ImageURL      *string   `db:"image_url" json:"image_url,omitempty"`
	FigmaURL      *string   `db:"figma_url" json:"figma_url,omitempty"`
	LiveURL       *string   `db:"live_url" json:"live_url,omitempty"`
	ShowLiveDemo  bool      `db:"show_live_demo" json:"show_live_demo"`
	IsPublished   bool      `db:"is_published" json:"is_published"`
	IsFeatured    bool      `db:"is_featured" json:"is_featured"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	ViewsCount    int64     `db:"views_count" json:"views_count"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
