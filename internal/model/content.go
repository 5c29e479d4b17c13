package model

import "time"

// AboutContent is a singleton row, created empty on first read.
type AboutContent struct {
	ID               int64     `db:"id" json:"id"`
	HeroTitleUK      *string   `db:"hero_title_uk" json:"hero_title_uk,omitempty"`
	HeroTitleEN      *string   `db:"hero_title_en" json:"hero_title_en,omitempty"`
	HeroSubtitleUK   *string   `db:"hero_subtitle_uk" json:"hero_subtitle_uk,omitempty"`
	HeroSubtitleEN   *string   `db:"hero_subtitle_en" json:"hero_subtitle_en,omitempty"`
	MissionUK        *string   `db:"mission_uk" json:"mission_uk,omitempty"`
	MissionEN        *string   `db:"mission_en" json:"mission_en,omitempty"`
	VisionUK         *string   `db:"vision_uk" json:"vision_uk,omitempty"`
	VisionEN         *string   `db:"vision_en" json:"vision_en,omitempty"`
	WhyChooseUsUK    *string   `db:"why_choose_us_uk" json:"why_choose_us_uk,omitempty"`
	WhyChooseUsEN    *string   `db:"why_choose_us_en" json:"why_choose_us_en,omitempty"`
	CTATitleUK       *string   `db:"cta_title_uk" json:"cta_title_uk,omitempty"`
	CTATitleEN       *string   `db:"cta_title_en" json:"cta_title_en,omitempty"`
	CTADescriptionUK *string   `db:"cta_description_uk" json:"cta_description_uk,omitempty"`
	CTADescriptionEN *string   `db:"cta_description_en" json:"cta_description_en,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type ContentBlock struct {
	ID          int64     `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	ContentUK   string    `db:"content_uk" json:"content_uk"`
	ContentEN   string    `db:"content_en" json:"content_en"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type ContactInfo struct {
	ID             int64     `db:"id" json:"id"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Email          *string   `db:"email" json:"email,omitempty"`
	Telegram       *string   `db:"telegram" json:"telegram,omitempty"`
	TelegramURL    *string   `db:"telegram_url" json:"telegram_url,omitempty"`
	AddressUK      *string   `db:"address_uk" json:"address_uk,omitempty"`
	AddressEN      *string   `db:"address_en" json:"address_en,omitempty"`
	WorkingHoursUK *string   `db:"working_hours_uk" json:"working_hours_uk,omitempty"`
	WorkingHoursEN *string   `db:"working_hours_en" json:"working_hours_en,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PolicyTypePrivacy = "privacy_policy"
	PolicyTypeTerms   = "terms_of_use"
)

type Policy struct {
	ID        int64     `db:"id" json:"id"`
	Type      string    `db:"type" json:"type"`
	TitleUK   string    `db:"title_uk" json:"title_uk"`
	TitleEN   string    `db:"title_en" json:"title_en"`
	ContentUK string    `db:"content_uk" json:"content_uk"`
	ContentEN string    `db:"content_en" json:"content_en"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SiteSetting struct {
	ID          int64     `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Key         string    `db:"key" json:"key"`
	Value       *string   `db:"value" json:"value,omitempty"`
	Type        string    `db:"type" json:"type"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsPublic    bool      `db:"is_public" json:"is_public"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
