package model

import "time"

type Package struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Slug         string     `db:"slug" json:"slug"`
	PriceUK      string     `db:"price_uk" json:"price_uk"`
	PriceEN      string     `db:"price_en" json:"price_en"`
	DurationUK   *string    `db:"duration_uk" json:"duration_uk,omitempty"`
	DurationEN   *string    `db:"duration_en" json:"duration_en,omitempty"`
	FeaturesUK   StringList `db:"features_uk" json:"features_uk"`
	FeaturesEN   StringList `db:"features_en" json:"features_en"`
	AdvantagesUK StringList `db:"advantages_uk" json:"advantages_uk"`
	AdvantagesEN StringList `db:"advantages_en" json:"advantages_en"`
	ProcessUK    StringList `db:"process_uk" json:"process_uk"`
	ProcessEN    StringList `db:"process_en" json:"process_en"`
	SupportUK    *string    `db:"support_uk" json:"support_uk,omitempty"`
	SupportEN    *string    `db:"support_en" json:"support_en,omitempty"`
	IsPopular    bool       `db:"is_popular" json:"is_popular"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	SortOrder    int        `db:"sort_order" json:"sort_order"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
