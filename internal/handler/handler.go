package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/service"
)

type Handlers struct {
	Auth       *AuthHandler
	Employee   *EmployeeHandler
	Department *DepartmentHandler
	Dashboard  *DashboardHandler
	Messaging  *MessagingHandler
	Export     *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(services.Auth),
		Employee:   NewEmployeeHandler(services.Employee),
		Department: NewDepartmentHandler(services.Department),
		Dashboard:  NewDashboardHandler(services.Dashboard),
		Messaging:  NewMessagingHandler(services.Messaging),
		Export:     NewExportHandler(services.Export),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.PaginationParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 10),
	}
	params.Validate()
	return params
}

func getEmployeeFilter(c *fiber.Ctx) (domain.EmployeeFilter, error) {
	filter := domain.EmployeeFilter{
		Search: c.Query("search"),
		Status: domain.EmployeeStatus(c.Query("status")),
	}

	if raw := c.Query("department_id"); raw != "" {
		departmentID, err := uuid.Parse(raw)
		if err != nil {
			return filter, err
		}
		filter.DepartmentID = &departmentID
	}

	return filter, nil
}
