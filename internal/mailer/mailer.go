package mailer

import (
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
)

// Sender delivers a rendered email.
type Sender interface {
	Send(to, subject, html string) error
}

type resendSender struct {
	client   *resend.Client
	fromName string
	fromAddr string
}

func NewResendSender() Sender {
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Studio"
	}
	fromAddr := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromAddr == "" {
		fromAddr = "onboarding@resend.dev"
	}

	return &resendSender{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		fromName: fromName,
		fromAddr: fromAddr,
	}
}

func (s *resendSender) Send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromAddr),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
