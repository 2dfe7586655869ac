package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	User       UserRepository
	Department DepartmentRepository
	Employee   EmployeeRepository
	Message    MessageRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Department: NewDepartmentRepository(db),
		Employee:   NewEmployeeRepository(db),
		Message:    NewMessageRepository(db),
	}
}

const uniqueViolation = "23505"

// uniqueConstraint returns the name of the violated unique constraint,
// or "" when err is not a uniqueness violation. Uniqueness is enforced
// here rather than in validation because validate-then-write is not
// atomic across concurrent callers.
func uniqueConstraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pqErr.Constraint
	}
	return ""
}
