package department

import (
	"context"

	"github.com/google/uuid"

	"staff-records/internal/domain"
	"staff-records/internal/repository"
	"staff-records/internal/validation"
)

// Service intentionally exposes no Delete: removing a department (and
// cascading over its employees) is not part of the management surface.
// The repository-level cascade exists for administrative tooling.
type Service interface {
	Create(ctx context.Context, input domain.CreateDepartmentInput) (*domain.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateDepartmentInput) (*domain.Department, error)
	List(ctx context.Context) ([]domain.DepartmentWithCount, error)
}

type service struct {
	departmentRepo repository.DepartmentRepository
	validator      *validation.Validator
}

func NewService(departmentRepo repository.DepartmentRepository, validator *validation.Validator) Service {
	return &service{
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateDepartmentInput) (*domain.Department, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}

	department := &domain.Department{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateDepartmentInput) (*domain.Department, error) {
	if verr := s.validator.Struct(input); verr != nil {
		return nil, verr
	}

	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}

	if input.Name != nil {
		department.Name = *input.Name
	}
	if input.Description.Set {
		department.Description = input.Description.Value
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

func (s *service) List(ctx context.Context) ([]domain.DepartmentWithCount, error) {
	return s.departmentRepo.ListWithCounts(ctx)
}
