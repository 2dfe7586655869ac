package unit_test

import (
	"testing"

	"staff-records/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsPhone(t *testing.T) {
	valid := []string{
		"+6281234567890",
		"6281234567890",
		"+15551234567",
		"123456789",
		"123456789012345",
	}
	for _, p := range valid {
		assert.True(t, validation.IsPhone(p), p)
	}

	invalid := []string{
		"",
		"12345678",
		"1234567890123456",
		"+62 812 3456 7890",
		"0812-3456-7890",
		"phone",
	}
	for _, p := range invalid {
		assert.False(t, validation.IsPhone(p), p)
	}
}

func TestValidator_Money(t *testing.T) {
	v := validation.New()

	type payload struct {
		Amount string `validate:"money"`
	}

	for _, amount := range []string{"0", "5400", "5400.5", "5400.50", "99999999.99"} {
		assert.Nil(t, v.Struct(payload{Amount: amount}), amount)
	}

	for _, amount := range []string{"", "-1", "5400.505", "1,000", "100000000", "abc"} {
		assert.NotNil(t, v.Struct(payload{Amount: amount}), amount)
	}
}

func TestValidator_FieldNames(t *testing.T) {
	v := validation.New()

	type payload struct {
		EmployeeID  string `validate:"required"`
		DateOfBirth string `validate:"required"`
	}

	verr := v.Struct(payload{})

	assert.NotNil(t, verr)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "employee_id", verr.Fields[0].Field)
	assert.Equal(t, "date_of_birth", verr.Fields[1].Field)
	assert.Equal(t, "this field is required", verr.Fields[0].Message)
}
