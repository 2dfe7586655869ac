package mocks

import (
	"context"

	"staff-records/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MessageRepository) RecordOutcome(ctx context.Context, id uuid.UUID, isSent bool, errorMessage *string) error {
	args := m.Called(ctx, id, isSent, errorMessage)
	return args.Error(0)
}

func (m *MessageRepository) History(ctx context.Context, senderID, recipientID uuid.UUID) ([]domain.Message, error) {
	args := m.Called(ctx, senderID, recipientID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
