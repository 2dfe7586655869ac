//go:build integration
// +build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"staff-records/internal/domain"
	"staff-records/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDepartment(t *testing.T, repos *repository.Repositories, name string) *domain.Department {
	t.Helper()
	dept := &domain.Department{ID: uuid.New(), Name: name}
	require.NoError(t, repos.Department.Create(context.Background(), dept))
	return dept
}

func seedEmployee(t *testing.T, repos *repository.Repositories, departmentID uuid.UUID, employeeID, email string) *domain.Employee {
	t.Helper()
	emp := &domain.Employee{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		FirstName:    "Amina",
		LastName:     "Yusuf",
		Email:        email,
		DateOfBirth:  time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderFemale,
		Address:      "12 Harbor Street",
		DepartmentID: departmentID,
		Position:     "Analyst",
		Salary:       "5400.50",
		HireDate:     time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusActive,
	}
	require.NoError(t, repos.Employee.Create(context.Background(), emp))
	return emp
}

func TestUniquenessConflicts(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	repos := repository.NewRepositories(env.DB)
	dept := seedDepartment(t, repos, "Engineering")
	seedEmployee(t, repos, dept.ID, "EMP001", "amina.yusuf@example.com")

	t.Run("Duplicate Employee ID", func(t *testing.T) {
		dup := seedEmployeeInput(dept.ID, "EMP001", "other@example.com")
		err := repos.Employee.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrEmployeeIDTaken)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		dup := seedEmployeeInput(dept.ID, "EMP002", "amina.yusuf@example.com")
		err := repos.Employee.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("Duplicate Department Name", func(t *testing.T) {
		err := repos.Department.Create(ctx, &domain.Department{ID: uuid.New(), Name: "Engineering"})
		assert.ErrorIs(t, err, domain.ErrDepartmentNameTaken)
	})
}

func seedEmployeeInput(departmentID uuid.UUID, employeeID, email string) *domain.Employee {
	return &domain.Employee{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		FirstName:    "Budi",
		LastName:     "Santoso",
		Email:        email,
		DateOfBirth:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:       domain.GenderMale,
		Address:      "3 Market Lane",
		DepartmentID: departmentID,
		Position:     "Clerk",
		Salary:       "3200.00",
		HireDate:     time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusActive,
	}
}

func seedNamedEmployee(t *testing.T, repos *repository.Repositories, departmentID uuid.UUID, employeeID, firstName, lastName string, status domain.EmployeeStatus) *domain.Employee {
	t.Helper()
	emp := seedEmployeeInput(departmentID, employeeID, firstName+"."+lastName+"@example.com")
	emp.FirstName = firstName
	emp.LastName = lastName
	emp.Status = status
	require.NoError(t, repos.Employee.Create(context.Background(), emp))
	return emp
}

func TestEmployeeSearch(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	repos := repository.NewRepositories(env.DB)
	engineering := seedDepartment(t, repos, "Engineering")
	research := seedDepartment(t, repos, "Research")

	// One match per field: first name, last name, employee id.
	seedNamedEmployee(t, repos, engineering.ID, "EMP101", "Katrin", "Moss", domain.StatusActive)
	seedNamedEmployee(t, repos, research.ID, "EMP102", "Lena", "Katz", domain.StatusActive)
	seedNamedEmployee(t, repos, engineering.ID, "KAT103", "Budi", "Santoso", domain.StatusInactive)
	seedNamedEmployee(t, repos, research.ID, "EMP104", "Citra", "Dewi", domain.StatusActive)

	params := domain.PaginationParams{Page: 1, PageSize: 10}

	t.Run("Matches Any Of The Three Fields", func(t *testing.T) {
		employees, total, err := repos.Employee.List(ctx, domain.EmployeeFilter{Search: "kat"}, params)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, employees, 3)
		// Ordered by first name, then last name.
		assert.Equal(t, "Budi", employees[0].FirstName)
		assert.Equal(t, "Katrin", employees[1].FirstName)
		assert.Equal(t, "Lena", employees[2].FirstName)
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		_, total, err := repos.Employee.List(ctx, domain.EmployeeFilter{Search: "KAT"}, params)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("Search And Department Compose", func(t *testing.T) {
		filter := domain.EmployeeFilter{Search: "kat", DepartmentID: &engineering.ID}
		employees, total, err := repos.Employee.List(ctx, filter, params)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, employees, 2)
		assert.Equal(t, "KAT103", employees[0].EmployeeID)
		assert.Equal(t, "EMP101", employees[1].EmployeeID)
	})

	t.Run("Search And Status Compose", func(t *testing.T) {
		filter := domain.EmployeeFilter{Search: "kat", Status: domain.StatusActive}
		employees, total, err := repos.Employee.List(ctx, filter, params)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, employees, 2)
		assert.Equal(t, "Katrin", employees[0].FirstName)
		assert.Equal(t, "Lena", employees[1].FirstName)
	})

	t.Run("No Match", func(t *testing.T) {
		employees, total, err := repos.Employee.List(ctx, domain.EmployeeFilter{Search: "zzz"}, params)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, employees)
	})
}

func TestDepartmentCascadeDelete(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	repos := repository.NewRepositories(env.DB)

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     "HR Admin",
		Email:        "admin@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, repos.User.Create(ctx, user))

	dept := seedDepartment(t, repos, "Finance")
	emp := seedEmployee(t, repos, dept.ID, "EMP010", "finance@example.com")

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    user.ID,
		RecipientID: emp.ID,
		MessageType: domain.MessageTypeEmail,
		Content:     "Welcome aboard",
	}
	require.NoError(t, repos.Message.Create(ctx, message))

	cascaded, err := repos.Department.Delete(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cascaded)

	gotDept, err := repos.Department.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Nil(t, gotDept)

	gotEmp, err := repos.Employee.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, gotEmp)

	gotMsg, err := repos.Message.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.Nil(t, gotMsg)
}

func TestEmployeeCascadeDelete(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	repos := repository.NewRepositories(env.DB)

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     "HR Admin",
		Email:        "admin2@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, repos.User.Create(ctx, user))

	dept := seedDepartment(t, repos, "Operations")
	emp := seedEmployee(t, repos, dept.ID, "EMP020", "ops@example.com")

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    user.ID,
		RecipientID: emp.ID,
		MessageType: domain.MessageTypeEmail,
		Content:     "Schedule update",
	}
	require.NoError(t, repos.Message.Create(ctx, message))

	require.NoError(t, repos.Employee.Delete(ctx, emp.ID))

	gotMsg, err := repos.Message.GetByID(ctx, message.ID)
	require.NoError(t, err)
	assert.Nil(t, gotMsg)

	// The department itself is untouched.
	gotDept, err := repos.Department.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotDept)
}

func TestMessageLifecycle(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()
	ctx := context.Background()

	repos := repository.NewRepositories(env.DB)

	user := &domain.User{
		ID:           uuid.New(),
		FullName:     "HR Admin",
		Email:        "admin3@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, repos.User.Create(ctx, user))

	dept := seedDepartment(t, repos, "Support")
	emp := seedEmployee(t, repos, dept.ID, "EMP030", "support@example.com")

	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    user.ID,
		RecipientID: emp.ID,
		MessageType: domain.MessageTypeWhatsApp,
		Content:     "Shift change tomorrow",
	}
	require.NoError(t, repos.Message.Create(ctx, message))
	assert.False(t, message.IsSent)
	assert.False(t, message.SentAt.IsZero())

	reason := "twilio: 63016 channel not found"
	require.NoError(t, repos.Message.RecordOutcome(ctx, message.ID, false, &reason))

	got, err := repos.Message.GetByID(ctx, message.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsSent)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, reason, *got.ErrorMessage)

	history, err := repos.Message.History(ctx, user.ID, emp.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// Other senders see nothing.
	history, err = repos.Message.History(ctx, uuid.New(), emp.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}
