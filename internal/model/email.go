package model

import "time"

const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
	EmailStatusRetry   = "retry"
)

type EmailTemplate struct {
	ID        int64      `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	SubjectUK string     `db:"subject_uk" json:"subject_uk"`
	SubjectEN string     `db:"subject_en" json:"subject_en"`
	ContentUK string     `db:"content_uk" json:"content_uk"`
	ContentEN string     `db:"content_en" json:"content_en"`
	Variables StringList `db:"variables" json:"variables"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type EmailLog struct {
	ID             int64      `db:"id" json:"id"`
	TemplateName   string     `db:"template_name" json:"template_name"`
	RecipientEmail string     `db:"recipient_email" json:"recipient_email"`
	Subject        string     `db:"subject" json:"subject"`
	Content        string     `db:"content" json:"content"`
	Status         string     `db:"status" json:"status"`
	ErrorMessage   *string    `db:"error_message" json:"error_message,omitempty"`
	RetryCount     int        `db:"retry_count" json:"retry_count"`
	SentAt         *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
