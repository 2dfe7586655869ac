package mocks

import (
	"context"

	"staff-records/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *DepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DepartmentRepository) ListWithCounts(ctx context.Context) ([]domain.DepartmentWithCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DepartmentWithCount), args.Error(1)
}

func (m *DepartmentRepository) TopByEmployeeCount(ctx context.Context, limit int) ([]domain.DepartmentWithCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.DepartmentWithCount), args.Error(1)
}

func (m *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
