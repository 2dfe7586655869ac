package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusInactive   EmployeeStatus = "inactive"
	StatusTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusTerminated:
		return true
	}
	return false
}

type Employee struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	EmployeeID   string         `json:"employee_id" db:"employee_id"`
	FirstName    string         `json:"first_name" db:"first_name"`
	LastName     string         `json:"last_name" db:"last_name"`
	Email        string         `json:"email" db:"email"`
	PhoneNumber  *string        `json:"phone_number,omitempty" db:"phone_number"`
	DateOfBirth  time.Time      `json:"date_of_birth" db:"date_of_birth"`
	Gender       Gender         `json:"gender" db:"gender"`
	Address      string         `json:"address" db:"address"`
	DepartmentID uuid.UUID      `json:"department_id" db:"department_id"`
	Position     string         `json:"position" db:"position"`
	Salary       string         `json:"salary" db:"salary"`
	HireDate     time.Time      `json:"hire_date" db:"hire_date"`
	Status       EmployeeStatus `json:"status" db:"status"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type CreateEmployeeInput struct {
	EmployeeID   string         `json:"employee_id" validate:"required,max=20"`
	FirstName    string         `json:"first_name" validate:"required,max=50"`
	LastName     string         `json:"last_name" validate:"required,max=50"`
	Email        string         `json:"email" validate:"required,email,max=254"`
	PhoneNumber  *string        `json:"phone_number,omitempty" validate:"omitempty,phone_e164"`
	DateOfBirth  time.Time      `json:"date_of_birth" validate:"required"`
	Gender       Gender         `json:"gender" validate:"required,oneof=M F O"`
	Address      string         `json:"address" validate:"required"`
	DepartmentID uuid.UUID      `json:"department_id" validate:"required"`
	Position     string         `json:"position" validate:"required,max=100"`
	Salary       string         `json:"salary" validate:"required,money"`
	HireDate     time.Time      `json:"hire_date" validate:"required"`
	Status       EmployeeStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive terminated"`
}

type UpdateEmployeeInput struct {
	EmployeeID   *string         `json:"employee_id" validate:"omitempty,max=20"`
	FirstName    *string         `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName     *string         `json:"last_name" validate:"omitempty,min=1,max=50"`
	Email        *string         `json:"email" validate:"omitempty,email,max=254"`
	PhoneNumber  NullableString  `json:"phone_number" validate:"-"`
	DateOfBirth  *time.Time      `json:"date_of_birth"`
	Gender       *Gender         `json:"gender" validate:"omitempty,oneof=M F O"`
	Address      *string         `json:"address" validate:"omitempty,min=1"`
	DepartmentID *uuid.UUID      `json:"department_id"`
	Position     *string         `json:"position" validate:"omitempty,min=1,max=100"`
	Salary       *string         `json:"salary" validate:"omitempty,money"`
	HireDate     *time.Time      `json:"hire_date"`
	Status       *EmployeeStatus `json:"status" validate:"omitempty,oneof=active inactive terminated"`
}

// EmployeeFilter narrows employee listings. Search matches first name,
// last name or employee id, each term independently (union semantics).
type EmployeeFilter struct {
	Search       string         `json:"search" query:"search"`
	DepartmentID *uuid.UUID     `json:"department_id" query:"department_id"`
	Status       EmployeeStatus `json:"status" query:"status"`
}

// NormalizeSalary pads an already validated amount to two fraction digits,
// matching the numeric(10,2) column.
func NormalizeSalary(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s + ".00"
	}
	if len(s)-dot-1 == 1 {
		return s + "0"
	}
	return s
}
