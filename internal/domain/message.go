package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeEmail    MessageType = "email"
	MessageTypeWhatsApp MessageType = "whatsapp"
)

func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeEmail, MessageTypeWhatsApp:
		return true
	}
	return false
}

// Message is the delivery log row. It is written twice: once in pending
// shape before any transport call, and once more to record the outcome.
// SentAt is set at creation and acts as the record timestamp regardless
// of the actual delivery time.
type Message struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	SenderID     uuid.UUID   `json:"sender_id" db:"sender_id"`
	RecipientID  uuid.UUID   `json:"recipient_id" db:"recipient_id"`
	MessageType  MessageType `json:"message_type" db:"message_type"`
	Subject      *string     `json:"subject,omitempty" db:"subject"`
	Content      string      `json:"content" db:"content"`
	IsSent       bool        `json:"is_sent" db:"is_sent"`
	ErrorMessage *string     `json:"error_message,omitempty" db:"error_message"`
	SentAt       time.Time   `json:"sent_at" db:"sent_at"`
}

type SendEmailInput struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Subject     *string   `json:"subject,omitempty" validate:"omitempty,max=255"`
	Content     string    `json:"content" validate:"required"`
}

type SendWhatsAppInput struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Content     string    `json:"content" validate:"required"`
}
