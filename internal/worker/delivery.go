// Package worker drains the optional email delivery queue. Each queued
// message gets exactly one transport attempt; the outcome is written
// back to the delivery log and never retried.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"staff-records/internal/repository"
	"staff-records/internal/service/messaging"
)

const popTimeout = 5 * time.Second

type DeliveryWorker struct {
	client       *redis.Client
	messageRepo  repository.MessageRepository
	employeeRepo repository.EmployeeRepository
	email        messaging.EmailSender
}

func NewDeliveryWorker(client *redis.Client, messageRepo repository.MessageRepository, employeeRepo repository.EmployeeRepository, email messaging.EmailSender) *DeliveryWorker {
	return &DeliveryWorker{
		client:       client,
		messageRepo:  messageRepo,
		employeeRepo: employeeRepo,
		email:        email,
	}
}

// Run blocks until ctx is cancelled.
func (w *DeliveryWorker) Run(ctx context.Context) {
	log.Info().Msg("delivery worker started")
	for {
		result, err := w.client.BRPop(ctx, popTimeout, emailQueueKey).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Info().Msg("delivery worker stopped")
				return
			}
			if errors.Is(err, redis.Nil) {
				continue
			}
			log.Error().Err(err).Msg("delivery queue pop failed")
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value].
		if len(result) != 2 {
			continue
		}
		w.process(ctx, result[1])
	}
}

func (w *DeliveryWorker) process(ctx context.Context, rawID string) {
	messageID, err := uuid.Parse(rawID)
	if err != nil {
		log.Error().Str("raw_id", rawID).Msg("discarding malformed queue entry")
		return
	}

	message, err := w.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		log.Error().Err(err).Str("message_id", rawID).Msg("failed to load queued message")
		return
	}
	if message == nil || message.IsSent {
		return
	}

	recipient, err := w.employeeRepo.GetByID(ctx, message.RecipientID)
	if err != nil {
		log.Error().Err(err).Str("message_id", rawID).Msg("failed to load recipient")
		return
	}
	if recipient == nil {
		reason := "recipient no longer exists"
		_ = w.messageRepo.RecordOutcome(ctx, message.ID, false, &reason)
		return
	}

	subject := ""
	if message.Subject != nil {
		subject = *message.Subject
	}

	sendErr := w.email.Send(ctx, recipient.Email, subject, message.Content)
	if sendErr != nil {
		reason := sendErr.Error()
		if err := w.messageRepo.RecordOutcome(ctx, message.ID, false, &reason); err != nil {
			log.Error().Err(err).Str("message_id", rawID).Msg("failed to record delivery failure")
		}
		log.Warn().Str("message_id", rawID).Str("reason", reason).Msg("queued delivery failed")
		return
	}

	if err := w.messageRepo.RecordOutcome(ctx, message.ID, true, nil); err != nil {
		log.Error().Err(err).Str("message_id", rawID).Msg("failed to record delivery success")
	}
}
