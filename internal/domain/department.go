package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NullableString struct {
	Value *string
	Set   bool
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type Department struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DepartmentWithCount carries the live employee count computed at query
// time; it is never stored.
type DepartmentWithCount struct {
	Department
	EmployeeCount int64 `json:"employee_count" db:"employee_count"`
}

type CreateDepartmentInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type UpdateDepartmentInput struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Description NullableString `json:"description" validate:"-"`
}
