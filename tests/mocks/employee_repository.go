package mocks

import (
	"context"

	"staff-records/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EmployeeRepository) List(ctx context.Context, filter domain.EmployeeFilter, params domain.PaginationParams) ([]domain.Employee, int64, error) {
	args := m.Called(ctx, filter, params)
	return args.Get(0).([]domain.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *EmployeeRepository) ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmployeeRepository) CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EmployeeRepository) AverageSalary(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *EmployeeRepository) RecentByStatus(ctx context.Context, status domain.EmployeeStatus, limit int) ([]domain.Employee, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
