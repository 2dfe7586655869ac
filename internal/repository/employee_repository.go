package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staff-records/internal/domain"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.EmployeeFilter, params domain.PaginationParams) ([]domain.Employee, int64, error)
	ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error)
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int64, error)
	AverageSalary(ctx context.Context) (float64, error)
	RecentByStatus(ctx context.Context, status domain.EmployeeStatus, limit int) ([]domain.Employee, error)
}

type employeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func mapEmployeeConflict(err error) error {
	switch uniqueConstraint(err) {
	case "employees_employee_id_key":
		return domain.ErrEmployeeIDTaken
	case "employees_email_key":
		return domain.ErrEmailTaken
	}
	return err
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	query := `
		INSERT INTO employees (id, employee_id, first_name, last_name, email,
			phone_number, date_of_birth, gender, address, department_id,
			position, salary, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		employee.ID, employee.EmployeeID, employee.FirstName, employee.LastName,
		employee.Email, employee.PhoneNumber, employee.DateOfBirth, employee.Gender,
		employee.Address, employee.DepartmentID, employee.Position, employee.Salary,
		employee.HireDate, employee.Status,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	return mapEmployeeConflict(err)
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var employee domain.Employee
	query := `SELECT * FROM employees WHERE id = $1`

	err := r.db.GetContext(ctx, &employee, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET employee_id = $2, first_name = $3, last_name = $4, email = $5,
			phone_number = $6, date_of_birth = $7, gender = $8, address = $9,
			department_id = $10, position = $11, salary = $12, hire_date = $13,
			status = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		employee.ID, employee.EmployeeID, employee.FirstName, employee.LastName,
		employee.Email, employee.PhoneNumber, employee.DateOfBirth, employee.Gender,
		employee.Address, employee.DepartmentID, employee.Position, employee.Salary,
		employee.HireDate, employee.Status,
	).Scan(&employee.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrEmployeeNotFound
	}
	return mapEmployeeConflict(err)
}

// Delete removes the employee and their delivery log in one transaction.
func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE recipient_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}

	return tx.Commit()
}

func (r *employeeRepository) List(ctx context.Context, filter domain.EmployeeFilter, params domain.PaginationParams) ([]domain.Employee, int64, error) {
	params.Validate()

	where := []string{"TRUE"}
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		// OR across the three fields: a match in any one is sufficient.
		where = append(where, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR employee_id ILIKE $%d)", n, n, n))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		where = append(where, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + cond
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`
		SELECT * FROM employees
		WHERE %s
		ORDER BY first_name, last_name
		LIMIT $%d OFFSET $%d`, cond, len(args)-1, len(args))

	employees := []domain.Employee{}
	err := r.db.SelectContext(ctx, &employees, query, args...)
	return employees, total, err
}

func (r *employeeRepository) ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	query := `
		SELECT * FROM employees
		WHERE status = $1
		ORDER BY first_name, last_name`

	employees := []domain.Employee{}
	err := r.db.SelectContext(ctx, &employees, query, status)
	return employees, err
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT * FROM employees ORDER BY first_name, last_name`

	employees := []domain.Employee{}
	err := r.db.SelectContext(ctx, &employees, query)
	return employees, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employees`)
	return count, err
}

func (r *employeeRepository) CountByStatus(ctx context.Context, status domain.EmployeeStatus) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employees WHERE status = $1`, status)
	return count, err
}

func (r *employeeRepository) AverageSalary(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.GetContext(ctx, &avg, `SELECT COALESCE(AVG(salary), 0) FROM employees`)
	return avg, err
}

func (r *employeeRepository) RecentByStatus(ctx context.Context, status domain.EmployeeStatus, limit int) ([]domain.Employee, error) {
	query := `
		SELECT * FROM employees
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`

	employees := []domain.Employee{}
	err := r.db.SelectContext(ctx, &employees, query, status, limit)
	return employees, err
}
