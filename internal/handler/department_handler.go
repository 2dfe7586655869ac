package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/middleware"
	"staff-records/internal/service/department"
)

type DepartmentHandler struct {
	departmentService department.Service
}

func NewDepartmentHandler(departmentService department.Service) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	dept, err := h.departmentService.Create(c.Context(), input)
	if err != nil {
		return mapDepartmentError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(dept)
}

func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.departmentService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(departments)
}

func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return middleware.BadRequest("Invalid department ID")
	}

	dept, err := h.departmentService.GetByID(c.Context(), departmentID)
	if err != nil {
		return mapDepartmentError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dept)
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	departmentID, err := uuid.Parse(c.Params("departmentId"))
	if err != nil {
		return middleware.BadRequest("Invalid department ID")
	}

	var input domain.UpdateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	dept, err := h.departmentService.Update(c.Context(), departmentID, input)
	if err != nil {
		return mapDepartmentError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dept)
}

func mapDepartmentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return middleware.NotFound("Department not found")
	case errors.Is(err, domain.ErrDepartmentNameTaken):
		return middleware.Conflict("Department name already in use")
	}
	return err
}
