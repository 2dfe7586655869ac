package whatsapp

import (
	"context"
	"errors"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"staff-records/internal/config"
)

var ErrNotConfigured = errors.New("whatsapp transport is not configured: set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_FROM")

// Service delivers WhatsApp messages through Twilio. An unconfigured
// provider is a startup error, not a runtime no-op.
type Service interface {
	Send(ctx context.Context, toPhone, body string) error
}

type service struct {
	client *twilio.RestClient
	from   string
}

func NewService(cfg *config.Config) (Service, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioWhatsAppFrom == "" {
		return nil, ErrNotConfigured
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &service{
		client: client,
		from:   cfg.TwilioWhatsAppFrom,
	}, nil
}

func (s *service) Send(ctx context.Context, toPhone, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + s.from)
	params.SetTo("whatsapp:" + toPhone)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
