package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"staff-records/internal/middleware"
	"staff-records/internal/service/export"
)

type ExportHandler struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) ExportEmployees(c *fiber.Ctx) error {
	objectName, err := h.exportService.ExportEmployees(c.Context())
	if err != nil {
		if errors.Is(err, export.ErrStorageNotConfigured) {
			return middleware.BadRequest("Export storage is not configured")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"object_name": objectName,
	})
}
