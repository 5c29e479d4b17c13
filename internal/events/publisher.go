package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"studio-api/internal/model"
)

type EventPublisher interface {
	PublishQuoteSubmitted(app *model.QuoteApplication) error
	PublishConsultationSubmitted(app *model.ConsultationApplication) error
	PublishReviewSubmitted(review *model.Review) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type QuoteSubmittedEvent struct {
	EventType   string    `json:"event_type"`
	QuoteID     int64     `json:"quote_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	ProjectType string    `json:"project_type"`
	Budget      *string   `json:"budget,omitempty"`
	Description string    `json:"description"`
	PackageID   *int64    `json:"package_id,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ConsultationSubmittedEvent struct {
	EventType      string    `json:"event_type"`
	ConsultationID int64     `json:"consultation_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Telegram       *string   `json:"telegram,omitempty"`
	Message        *string   `json:"message,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ReviewSubmittedEvent struct {
	EventType   string    `json:"event_type"`
	ReviewID    int64     `json:"review_id"`
	AuthorName  *string   `json:"author_name,omitempty"`
	AuthorEmail *string   `json:"author_email,omitempty"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (p *NatsPublisher) PublishQuoteSubmitted(app *model.QuoteApplication) error {
	event := QuoteSubmittedEvent{
		EventType:   "quote.submitted",
		QuoteID:     app.ID,
		Name:        app.Name,
		Email:       app.Email,
		ProjectType: app.ProjectType,
		Budget:      app.Budget,
		Description: app.Description,
		PackageID:   app.PackageID,
		SubmittedAt: app.CreatedAt,
	}

	return p.publish("quote.submitted", event)
}

func (p *NatsPublisher) PublishConsultationSubmitted(app *model.ConsultationApplication) error {
	event := ConsultationSubmittedEvent{
		EventType:      "consultation.submitted",
		ConsultationID: app.ID,
		FirstName:      app.FirstName,
		LastName:       app.LastName,
		Phone:          app.Phone,
		Telegram:       app.Telegram,
		Message:        app.Message,
		SubmittedAt:    app.CreatedAt,
	}

	return p.publish("consultation.submitted", event)
}

func (p *NatsPublisher) PublishReviewSubmitted(review *model.Review) error {
	event := ReviewSubmittedEvent{
		EventType:   "review.submitted",
		ReviewID:    review.ID,
		AuthorName:  review.AuthorName,
		AuthorEmail: review.AuthorEmail,
		Rating:      review.Rating,
		SubmittedAt: review.CreatedAt,
	}

	return p.publish("review.submitted", event)
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		log.Printf("Error marshalling event JSON: %v", err)
		return err
	}

	err = p.conn.Publish(subject, eventJSON)

	if err != nil {
		log.Printf("Error publishing to NATS: %v", err)
		return err
	}

	log.Printf("Published event to NATS on subject '%s'", subject)

	return nil
}
