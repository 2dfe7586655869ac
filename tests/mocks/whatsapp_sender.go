package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type WhatsAppSender struct {
	mock.Mock
}

func (m *WhatsAppSender) Send(ctx context.Context, toPhone, body string) error {
	args := m.Called(ctx, toPhone, body)
	return args.Error(0)
}
