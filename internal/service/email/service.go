package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"staff-records/internal/config"
)

// Service delivers ad-hoc plain-text messages through Resend. It
// satisfies the dispatcher's EmailSender contract.
type Service interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) Send(ctx context.Context, toEmail, subject, body string) error {
	if subject == "" {
		subject = fmt.Sprintf("Message from %s", s.cfg.FromName)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	return err
}
