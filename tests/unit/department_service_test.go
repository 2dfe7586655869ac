package unit_test

import (
	"context"
	"errors"
	"testing"

	"staff-records/internal/domain"
	"staff-records/internal/service/department"
	"staff-records/internal/validation"
	"staff-records/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Department) bool {
			return d.Name == "Engineering" && *d.Description == "Product development"
		})).Return(nil).Once()

		dept, err := svc.Create(ctx, domain.CreateDepartmentInput{
			Name:        "Engineering",
			Description: stringPtr("Product development"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", dept.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Name", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		dept, err := svc.Create(ctx, domain.CreateDepartmentInput{})

		assert.Nil(t, dept)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Fields[0].Field)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDepartmentNameTaken).Once()

		dept, err := svc.Create(ctx, domain.CreateDepartmentInput{Name: "Engineering"})

		assert.Nil(t, dept)
		assert.ErrorIs(t, err, domain.ErrDepartmentNameTaken)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	departmentID := uuid.New()

	existing := func() *domain.Department {
		return &domain.Department{
			ID:          departmentID,
			Name:        "Engineering",
			Description: stringPtr("Product development"),
		}
	}

	t.Run("Rename", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("GetByID", ctx, departmentID).Return(existing(), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Department) bool {
			return d.Name == "Platform" && *d.Description == "Product development"
		})).Return(nil).Once()

		dept, err := svc.Update(ctx, departmentID, domain.UpdateDepartmentInput{
			Name: stringPtr("Platform"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Platform", dept.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Clear Description", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("GetByID", ctx, departmentID).Return(existing(), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Department) bool {
			return d.Description == nil
		})).Return(nil).Once()

		dept, err := svc.Update(ctx, departmentID, domain.UpdateDepartmentInput{
			Description: domain.NullableString{Set: true, Value: nil},
		})

		assert.NoError(t, err)
		assert.Nil(t, dept.Description)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("GetByID", ctx, departmentID).Return(nil, nil).Once()

		dept, err := svc.Update(ctx, departmentID, domain.UpdateDepartmentInput{
			Name: stringPtr("Platform"),
		})

		assert.Nil(t, dept)
		assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()
	departmentID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		expected := &domain.Department{ID: departmentID, Name: "Finance"}
		mockRepo.On("GetByID", ctx, departmentID).Return(expected, nil).Once()

		dept, err := svc.GetByID(ctx, departmentID)

		assert.NoError(t, err)
		assert.Equal(t, expected, dept)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("GetByID", ctx, departmentID).Return(nil, nil).Once()

		dept, err := svc.GetByID(ctx, departmentID)

		assert.Nil(t, dept)
		assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns Counts", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		rows := []domain.DepartmentWithCount{
			{Department: domain.Department{Name: "Engineering"}, EmployeeCount: 12},
			{Department: domain.Department{Name: "Finance"}, EmployeeCount: 0},
		}
		mockRepo.On("ListWithCounts", ctx).Return(rows, nil).Once()

		departments, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, departments, 2)
		assert.Equal(t, int64(0), departments[1].EmployeeCount)
	})

	t.Run("Repo Error", func(t *testing.T) {
		mockRepo := new(mocks.DepartmentRepository)
		svc := department.NewService(mockRepo, validation.New())

		mockRepo.On("ListWithCounts", ctx).
			Return([]domain.DepartmentWithCount(nil), errors.New("db error")).Once()

		_, err := svc.List(ctx)

		assert.Error(t, err)
	})
}
