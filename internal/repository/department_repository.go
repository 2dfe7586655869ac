package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"staff-records/internal/domain"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, department *domain.Department) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListWithCounts(ctx context.Context) ([]domain.DepartmentWithCount, error)
	TopByEmployeeCount(ctx context.Context, limit int) ([]domain.DepartmentWithCount, error)
	Count(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *domain.Department) error {
	query := `
		INSERT INTO departments (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		department.ID, department.Name, department.Description,
	).Scan(&department.CreatedAt)
	if uniqueConstraint(err) == "departments_name_key" {
		return domain.ErrDepartmentNameTaken
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	var department domain.Department
	query := `SELECT * FROM departments WHERE id = $1`

	err := r.db.GetContext(ctx, &department, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) Update(ctx context.Context, department *domain.Department) error {
	query := `UPDATE departments SET name = $2, description = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		department.ID, department.Name, department.Description,
	)
	if uniqueConstraint(err) == "departments_name_key" {
		return domain.ErrDepartmentNameTaken
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// Delete removes the department together with its employees and their
// delivery log, all in one transaction. It returns the number of
// employees removed by the cascade.
func (r *departmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM messages
		WHERE recipient_id IN (SELECT id FROM employees WHERE department_id = $1)`, id)
	if err != nil {
		return 0, err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE department_id = $1`, id)
	if err != nil {
		return 0, err
	}
	cascaded, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	result, err = tx.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, domain.ErrDepartmentNotFound
	}

	return cascaded, tx.Commit()
}

func (r *departmentRepository) ListWithCounts(ctx context.Context) ([]domain.DepartmentWithCount, error) {
	query := `
		SELECT d.id, d.name, d.description, d.created_at,
			COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id
		ORDER BY d.name`

	departments := []domain.DepartmentWithCount{}
	err := r.db.SelectContext(ctx, &departments, query)
	return departments, err
}

func (r *departmentRepository) TopByEmployeeCount(ctx context.Context, limit int) ([]domain.DepartmentWithCount, error) {
	query := `
		SELECT d.id, d.name, d.description, d.created_at,
			COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id
		ORDER BY employee_count DESC, d.name
		LIMIT $1`

	departments := []domain.DepartmentWithCount{}
	err := r.db.SelectContext(ctx, &departments, query, limit)
	return departments, err
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM departments`)
	return count, err
}
