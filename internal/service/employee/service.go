package employee

import (
	"context"

	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/repository"
	"staff-records/internal/validation"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.EmployeeFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Employee], error)
}

type service struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	validator      *validation.Validator
}

func NewService(employeeRepo repository.EmployeeRepository, departmentRepo repository.DepartmentRepository, validator *validation.Validator) Service {
	return &service{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}

	department, err := s.departmentRepo.GetByID(ctx, input.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}

	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}

	employee := &domain.Employee{
		ID:           uuid.New(),
		EmployeeID:   input.EmployeeID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Address:      input.Address,
		DepartmentID: input.DepartmentID,
		Position:     input.Position,
		Salary:       domain.NormalizeSalary(input.Salary),
		HireDate:     input.HireDate,
		Status:       status,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateEmployeeInput) (*domain.Employee, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}
	if input.PhoneNumber.Set && input.PhoneNumber.Value != nil && !validation.IsPhone(*input.PhoneNumber.Value) {
		return nil, domain.NewValidationError("phone_number", "must be 9 to 15 digits, optionally prefixed with '+'")
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	if input.EmployeeID != nil {
		employee.EmployeeID = *input.EmployeeID
	}
	if input.FirstName != nil {
		employee.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		employee.LastName = *input.LastName
	}
	if input.Email != nil {
		employee.Email = *input.Email
	}
	if input.PhoneNumber.Set {
		employee.PhoneNumber = input.PhoneNumber.Value
	}
	if input.DateOfBirth != nil {
		employee.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		employee.Gender = *input.Gender
	}
	if input.Address != nil {
		employee.Address = *input.Address
	}
	if input.DepartmentID != nil {
		department, err := s.departmentRepo.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, domain.ErrDepartmentNotFound
		}
		employee.DepartmentID = *input.DepartmentID
	}
	if input.Position != nil {
		employee.Position = *input.Position
	}
	if input.Salary != nil {
		employee.Salary = domain.NormalizeSalary(*input.Salary)
	}
	if input.HireDate != nil {
		employee.HireDate = *input.HireDate
	}
	if input.Status != nil {
		employee.Status = *input.Status
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, filter domain.EmployeeFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Employee], error) {
	params.Validate()

	if filter.Status != "" && !filter.Status.IsValid() {
		return domain.PaginatedResponse[domain.Employee]{}, domain.NewValidationError("status", "must be one of: active inactive terminated")
	}

	employees, total, err := s.employeeRepo.List(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Employee]{}, err
	}

	return domain.NewPaginatedResponse(employees, params.Page, params.PageSize, total), nil
}
