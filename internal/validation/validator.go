// Package validation holds the field-level rules that run before any
// store mutation. It returns normalized field errors; the store remains
// the final arbiter for uniqueness under concurrent writers.
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"staff-records/internal/domain"
)

var (
	phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)
	moneyRegex = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("phone_e164", validatePhone)
	_ = v.RegisterValidation("money", validateMoney)

	return &Validator{validate: v}
}

// Struct runs the tag rules and translates failures into field-level
// errors keyed by the struct field's snake_case wire name.
func (v *Validator) Struct(s any) *domain.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return domain.NewValidationError("", "invalid input")
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("", err.Error())
	}

	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{
			Field:   toSnake(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

// IsPhone reports whether s is an acceptable phone number: 9 to 15
// digits, optionally prefixed with + and a leading 1.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateMoney(fl validator.FieldLevel) bool {
	return moneyRegex.MatchString(fl.Field().String())
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "phone_e164":
		return "must be 9 to 15 digits, optionally prefixed with '+'"
	case "money":
		return "must be a non-negative amount with at most two decimal places"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func toSnake(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && (s[i-1] < 'A' || s[i-1] > 'Z') {
				out = append(out, '_')
			}
			out = append(out, c+'a'-'A')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
