package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Phone numbers: optional leading +, 10-15 digits
	_ = val.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return phonePattern.MatchString(s)
	})

	return val
}

// Struct validates a tagged struct and returns per-field messages.
// The returned map is nil when validation passes.
func Struct(i interface{}) map[string]string {
	err := v.Struct(i)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		fields["_"] = err.Error()
		return fields
	}

	for _, fe := range ve {
		field := jsonName(fe.Field())
		fields[field] = fieldError(field, fe)
	}
	return fields
}

// jsonName converts a Go field name into its snake_case JSON name
func jsonName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fieldError converts a single validation error into a readable message
func fieldError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "phone":
		return field + " must be a valid phone number"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
