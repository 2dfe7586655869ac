package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrDepartmentNameTaken = errors.New("department name already in use")
	ErrEmployeeIDTaken     = errors.New("employee id already in use")
	ErrEmailTaken          = errors.New("email already in use")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level failures back to the caller for
// correction. Nothing is written to the store when it is returned.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// DeliveryError is recorded on the message row when the external
// transport fails. It is never fatal and never retried automatically.
type DeliveryError struct {
	Reason string
}

func (e *DeliveryError) Error() string {
	return "delivery failed: " + e.Reason
}
