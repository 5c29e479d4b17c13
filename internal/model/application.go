package model

import "time"

const (
	ApplicationStatusNew        = "new"
	ApplicationStatusInProgress = "in_progress"
	ApplicationStatusCompleted  = "completed"
	ApplicationStatusCancelled  = "cancelled"
)

func IsValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusNew, ApplicationStatusInProgress,
		ApplicationStatusCompleted, ApplicationStatusCancelled:
		return true
	}
	return false
}

type QuoteApplication struct {
	ID           int64      `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        *string    `db:"phone" json:"phone,omitempty"`
	ProjectType  string     `db:"project_type" json:"project_type"`
	Budget       *string    `db:"budget" json:"budget,omitempty"`
	Description  string     `db:"description" json:"description"`
	PackageID    *int64     `db:"package_id" json:"package_id,omitempty"`
	Status       string     `db:"status" json:"status"`
	AssignedToID *int64     `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	ProcessedAt  *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	ResponseText *string    `db:"response_text" json:"response_text,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type ConsultationApplication struct {
	ID                      int64      `db:"id" json:"id"`
	FirstName               string     `db:"first_name" json:"first_name"`
	LastName                string     `db:"last_name" json:"last_name"`
	Phone                   string     `db:"phone" json:"phone"`
	Telegram                *string    `db:"telegram" json:"telegram,omitempty"`
	Message                 *string    `db:"message" json:"message,omitempty"`
	Status                  string     `db:"status" json:"status"`
	AssignedToID            *int64     `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	ConsultationScheduledAt *time.Time `db:"consultation_scheduled_at" json:"consultation_scheduled_at,omitempty"`
	ConsultationCompletedAt *time.Time `db:"consultation_completed_at" json:"consultation_completed_at,omitempty"`
	Notes                   *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt               time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time  `db:"updated_at" json:"updated_at"`
}
