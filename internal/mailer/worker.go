package mailer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/nats-io/nats.go"

	"studio-api/internal/events"
	"studio-api/internal/model"
	"studio-api/internal/repository"
)

const maxSendAttempts = 3

// Worker consumes submission events and turns them into transactional
// emails. Every delivery attempt leaves a row in email_logs.
type Worker struct {
	conn       *nats.Conn
	emailRepo  repository.EmailRepository
	sender     Sender
	adminEmail string
}

func NewWorker(conn *nats.Conn, emailRepo repository.EmailRepository, sender Sender, adminEmail string) *Worker {
	return &Worker{
		conn:       conn,
		emailRepo:  emailRepo,
		sender:     sender,
		adminEmail: adminEmail,
	}
}

// Start seeds the default templates and subscribes to the submission
// subjects. Subscriptions stay alive until the connection closes.
func (w *Worker) Start(ctx context.Context) error {
	for _, tpl := range DefaultTemplates() {
		tplCopy := tpl
		if err := w.emailRepo.UpsertTemplate(ctx, &tplCopy); err != nil {
			return err
		}
	}

	if _, err := w.conn.Subscribe("quote.submitted", w.handleQuoteSubmitted); err != nil {
		return err
	}
	if _, err := w.conn.Subscribe("consultation.submitted", w.handleConsultationSubmitted); err != nil {
		return err
	}
	if _, err := w.conn.Subscribe("review.submitted", w.handleReviewSubmitted); err != nil {
		return err
	}

	slog.Info("Mailer worker subscribed", "subjects", []string{"quote.submitted", "consultation.submitted", "review.submitted"})

	return nil
}

func (w *Worker) handleQuoteSubmitted(msg *nats.Msg) {
	var event events.QuoteSubmittedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Cannot unmarshal quote.submitted event", "error", err)
		return
	}

	vars := map[string]string{
		"name":         event.Name,
		"email":        event.Email,
		"project_type": event.ProjectType,
		"budget":       orDash(event.Budget),
		"description":  event.Description,
	}

	ctx := context.Background()
	w.deliver(ctx, "quote_admin_notification", w.adminEmail, vars)
	w.deliver(ctx, "quote_customer_confirmation", event.Email, vars)
}

func (w *Worker) handleConsultationSubmitted(msg *nats.Msg) {
	var event events.ConsultationSubmittedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Cannot unmarshal consultation.submitted event", "error", err)
		return
	}

	vars := map[string]string{
		"first_name": event.FirstName,
		"last_name":  event.LastName,
		"phone":      event.Phone,
		"telegram":   orDash(event.Telegram),
		"message":    orDash(event.Message),
	}

	w.deliver(context.Background(), "consultation_admin_notification", w.adminEmail, vars)
}

func (w *Worker) handleReviewSubmitted(msg *nats.Msg) {
	var event events.ReviewSubmittedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Cannot unmarshal review.submitted event", "error", err)
		return
	}

	vars := map[string]string{
		"author_name":  orDash(event.AuthorName),
		"author_email": orDash(event.AuthorEmail),
		"rating":       strconv.Itoa(event.Rating),
	}

	w.deliver(context.Background(), "review_admin_notification", w.adminEmail, vars)
}

// deliver renders the named template and sends it with retries. The
// email_logs row is created as pending first so a crash mid-send still
// leaves a trace.
func (w *Worker) deliver(ctx context.Context, templateName, recipient string, vars map[string]string) {
	if recipient == "" {
		slog.Warn("Skipping email with empty recipient", "template", templateName)
		return
	}

	tpl, err := w.emailRepo.FindTemplateByName(ctx, templateName)
	if err != nil {
		slog.ErrorContext(ctx, "Email template not found", "template", templateName, "error", err)
		return
	}

	subject, body := RenderBilingual(tpl, vars)

	logID, err := w.emailRepo.CreateLog(ctx, &model.EmailLog{
		TemplateName:   templateName,
		RecipientEmail: recipient,
		Subject:        subject,
		Content:        body,
		Status:         model.EmailStatusPending,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Cannot create email log", "template", templateName, "error", err)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		lastErr = w.sender.Send(recipient, subject, body)
		if lastErr == nil {
			if err := w.emailRepo.MarkLogSent(ctx, logID, time.Now()); err != nil {
				slog.ErrorContext(ctx, "Cannot mark email log sent", "log_id", logID, "error", err)
			}
			slog.InfoContext(ctx, "Email sent", "template", templateName, "recipient", recipient)
			return
		}

		slog.WarnContext(ctx, "Email send attempt failed", "template", templateName, "attempt", attempt, "error", lastErr)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	if err := w.emailRepo.MarkLogFailed(ctx, logID, lastErr.Error(), maxSendAttempts); err != nil {
		slog.ErrorContext(ctx, "Cannot mark email log failed", "log_id", logID, "error", err)
	}
}

func orDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}
