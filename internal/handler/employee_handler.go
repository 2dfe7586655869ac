package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/middleware"
	"staff-records/internal/service/employee"
)

type EmployeeHandler struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	emp, err := h.employeeService.Create(c.Context(), input)
	if err != nil {
		return mapEmployeeError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(emp)
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	filter, err := getEmployeeFilter(c)
	if err != nil {
		return middleware.BadRequest("Invalid department ID")
	}
	params := getPaginationParams(c)

	result, err := h.employeeService.List(c.Context(), filter, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.BadRequest("Invalid employee ID")
	}

	emp, err := h.employeeService.GetByID(c.Context(), employeeID)
	if err != nil {
		return mapEmployeeError(err)
	}

	return c.Status(fiber.StatusOK).JSON(emp)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.BadRequest("Invalid employee ID")
	}

	var input domain.UpdateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	emp, err := h.employeeService.Update(c.Context(), employeeID, input)
	if err != nil {
		return mapEmployeeError(err)
	}

	return c.Status(fiber.StatusOK).JSON(emp)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employeeId"))
	if err != nil {
		return middleware.BadRequest("Invalid employee ID")
	}

	if err := h.employeeService.Delete(c.Context(), employeeID); err != nil {
		return mapEmployeeError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func mapEmployeeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return middleware.NotFound("Employee not found")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return middleware.NotFound("Department not found")
	case errors.Is(err, domain.ErrEmployeeIDTaken):
		return middleware.Conflict("Employee ID already in use")
	case errors.Is(err, domain.ErrEmailTaken):
		return middleware.Conflict("Email already in use")
	}
	return err
}
