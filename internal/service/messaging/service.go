// Package messaging is the notification dispatcher. Every outbound
// message moves through: composed -> pending (persisted, is_sent=false)
// -> sent or failed. The transition out of pending is a single
// best-effort transport call; failures are recorded verbatim and never
// retried or requeued.
package messaging

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"staff-records/internal/domain"
	"staff-records/internal/repository"
	"staff-records/internal/validation"
)

// EmailSender is the narrow contract of the external email transport.
type EmailSender interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

// WhatsAppSender is the narrow contract of the external WhatsApp
// transport. toPhone must be E.164 with a leading '+'.
type WhatsAppSender interface {
	Send(ctx context.Context, toPhone, body string) error
}

// DeliveryQueue offloads the email transport call to a worker. The
// pending row is persisted before enqueueing either way.
type DeliveryQueue interface {
	Enqueue(ctx context.Context, messageID uuid.UUID) error
}

type Service interface {
	SendEmail(ctx context.Context, senderID uuid.UUID, input domain.SendEmailInput) (*domain.Message, error)
	SendWhatsApp(ctx context.Context, senderID uuid.UUID, input domain.SendWhatsAppInput) (*domain.Message, error)
	History(ctx context.Context, senderID, employeeID uuid.UUID) ([]domain.Message, error)
	Recipients(ctx context.Context, messageType domain.MessageType) ([]domain.Employee, error)
	SetDeliveryQueue(queue DeliveryQueue)
}

type service struct {
	messageRepo  repository.MessageRepository
	employeeRepo repository.EmployeeRepository
	email        EmailSender
	whatsapp     WhatsAppSender
	queue        DeliveryQueue
	validator    *validation.Validator
}

func NewService(
	messageRepo repository.MessageRepository,
	employeeRepo repository.EmployeeRepository,
	email EmailSender,
	whatsapp WhatsAppSender,
	validator *validation.Validator,
) Service {
	return &service{
		messageRepo:  messageRepo,
		employeeRepo: employeeRepo,
		email:        email,
		whatsapp:     whatsapp,
		validator:    validator,
	}
}

// SetDeliveryQueue enables the asynchronous email path. Without a queue
// the transport call happens inline.
func (s *service) SetDeliveryQueue(queue DeliveryQueue) {
	s.queue = queue
}

func (s *service) SendEmail(ctx context.Context, senderID uuid.UUID, input domain.SendEmailInput) (*domain.Message, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}

	recipient, err := s.employeeRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrRecipientNotFound
	}

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipient.ID,
		MessageType: domain.MessageTypeEmail,
		Subject:     input.Subject,
		Content:     input.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.Enqueue(ctx, message.ID); err == nil {
			return message, nil
		}
		// Fall through to the synchronous path if the queue is down.
		log.Warn().Str("message_id", message.ID.String()).Msg("delivery queue unavailable, sending inline")
	}

	subject := ""
	if input.Subject != nil {
		subject = *input.Subject
	}

	sendErr := s.email.Send(ctx, recipient.Email, subject, input.Content)
	return s.recordOutcome(ctx, message, sendErr)
}

func (s *service) SendWhatsApp(ctx context.Context, senderID uuid.UUID, input domain.SendWhatsAppInput) (*domain.Message, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}

	recipient, err := s.employeeRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, domain.ErrRecipientNotFound
	}
	// Rejected before any row is written: a WhatsApp message without a
	// destination number leaves no trace in the delivery log.
	if recipient.PhoneNumber == nil || *recipient.PhoneNumber == "" {
		return nil, domain.NewValidationError("recipient_id", "recipient has no phone number on file")
	}

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipient.ID,
		MessageType: domain.MessageTypeWhatsApp,
		Content:     input.Content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	sendErr := s.whatsapp.Send(ctx, NormalizePhone(*recipient.PhoneNumber), input.Content)
	return s.recordOutcome(ctx, message, sendErr)
}

// recordOutcome is the second write of the message lifecycle. A failed
// delivery still leaves the row in place; the failure is an audit entry,
// not a mutation error.
func (s *service) recordOutcome(ctx context.Context, message *domain.Message, sendErr error) (*domain.Message, error) {
	if sendErr != nil {
		reason := sendErr.Error()
		message.IsSent = false
		message.ErrorMessage = &reason
		log.Warn().
			Str("message_id", message.ID.String()).
			Str("message_type", string(message.MessageType)).
			Str("reason", reason).
			Msg("delivery failed")
	} else {
		message.IsSent = true
		message.ErrorMessage = nil
	}

	if err := s.messageRepo.RecordOutcome(ctx, message.ID, message.IsSent, message.ErrorMessage); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *service) History(ctx context.Context, senderID, employeeID uuid.UUID) ([]domain.Message, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	return s.messageRepo.History(ctx, senderID, employeeID)
}

// Recipients returns the employees eligible as message targets: active
// only, and for WhatsApp only those with a phone number. This populates
// the selector; Send* still re-validates independently.
func (s *service) Recipients(ctx context.Context, messageType domain.MessageType) ([]domain.Employee, error) {
	if !messageType.IsValid() {
		return nil, domain.NewValidationError("message_type", "must be one of: email whatsapp")
	}

	active, err := s.employeeRepo.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	if messageType == domain.MessageTypeEmail {
		return active, nil
	}

	eligible := make([]domain.Employee, 0, len(active))
	for _, e := range active {
		if e.PhoneNumber != nil && *e.PhoneNumber != "" {
			eligible = append(eligible, e)
		}
	}
	return eligible, nil
}

// NormalizePhone ensures the leading '+' the WhatsApp transport expects.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}
