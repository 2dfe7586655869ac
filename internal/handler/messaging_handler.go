package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/middleware"
	"staff-records/internal/service/messaging"
)

type MessagingHandler struct {
	messagingService messaging.Service
}

func NewMessagingHandler(messagingService messaging.Service) *MessagingHandler {
	return &MessagingHandler{messagingService: messagingService}
}

func (h *MessagingHandler) SendEmail(c *fiber.Ctx) error {
	senderID := middleware.GetCurrentUserID(c)
	if senderID == uuid.Nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.SendEmailInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	message, err := h.messagingService.SendEmail(c.Context(), senderID, input)
	if err != nil {
		return mapMessagingError(err)
	}

	// A failed delivery is still a 200: the row documents the attempt
	// and is_sent/error_message carry the outcome.
	return c.Status(fiber.StatusOK).JSON(message)
}

func (h *MessagingHandler) SendWhatsApp(c *fiber.Ctx) error {
	senderID := middleware.GetCurrentUserID(c)
	if senderID == uuid.Nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.SendWhatsAppInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	message, err := h.messagingService.SendWhatsApp(c.Context(), senderID, input)
	if err != nil {
		return mapMessagingError(err)
	}

	return c.Status(fiber.StatusOK).JSON(message)
}

func (h *MessagingHandler) History(c *fiber.Ctx) error {
	senderID := middleware.GetCurrentUserID(c)
	if senderID == uuid.Nil {
		return middleware.Unauthorized("User not authenticated")
	}

	employeeID, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.BadRequest("Invalid employee ID")
	}

	messages, err := h.messagingService.History(c.Context(), senderID, employeeID)
	if err != nil {
		return mapMessagingError(err)
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func (h *MessagingHandler) Recipients(c *fiber.Ctx) error {
	messageType := domain.MessageType(c.Query("type", string(domain.MessageTypeEmail)))

	recipients, err := h.messagingService.Recipients(c.Context(), messageType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(recipients)
}

func mapMessagingError(err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipientNotFound):
		return middleware.NotFound("Recipient not found")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return middleware.NotFound("Employee not found")
	}
	return err
}
