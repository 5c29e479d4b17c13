package model

import "time"

type UploadedFile struct {
	ID               int64     `db:"id" json:"id"`
	UploadedByID     *int64    `db:"uploaded_by_id" json:"uploaded_by_id,omitempty"`
	OriginalFilename string    `db:"original_filename" json:"original_filename"`
	StoredFilename   string    `db:"stored_filename" json:"stored_filename"`
	FilePath         string    `db:"file_path" json:"file_path"`
	FileURL          string    `db:"file_url" json:"file_url"`
	FileSize         int64     `db:"file_size" json:"file_size"`
	MimeType         string    `db:"mime_type" json:"mime_type"`
	FileExtension    string    `db:"file_extension" json:"file_extension"`
	Category         string    `db:"category" json:"category"`
	AltText          *string   `db:"alt_text" json:"alt_text,omitempty"`
	Hash             string    `db:"hash" json:"hash"`
	ThumbnailURL     *string   `db:"thumbnail_url" json:"thumbnail_url,omitempty"`
	IsUsed           bool      `db:"is_used" json:"is_used"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
