package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staff-records/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	RecordOutcome(ctx context.Context, id uuid.UUID, isSent bool, errorMessage *string) error
	History(ctx context.Context, senderID, recipientID uuid.UUID) ([]domain.Message, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create persists the pending row before any delivery attempt. sent_at
// is assigned by the database at creation time.
func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, recipient_id, message_type, subject, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING is_sent, sent_at`

	return r.db.QueryRowxContext(ctx, query,
		message.ID, message.SenderID, message.RecipientID,
		message.MessageType, message.Subject, message.Content,
	).Scan(&message.IsSent, &message.SentAt)
}

func (r *messageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var message domain.Message
	query := `SELECT * FROM messages WHERE id = $1`

	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) RecordOutcome(ctx context.Context, id uuid.UUID, isSent bool, errorMessage *string) error {
	query := `UPDATE messages SET is_sent = $2, error_message = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, isSent, errorMessage)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// History is scoped per sender: only messages the acting user sent to
// the given employee, newest first.
func (r *messageRepository) History(ctx context.Context, senderID, recipientID uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE sender_id = $1 AND recipient_id = $2
		ORDER BY sent_at DESC`

	messages := []domain.Message{}
	err := r.db.SelectContext(ctx, &messages, query, senderID, recipientID)
	return messages, err
}
