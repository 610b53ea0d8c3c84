package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// defaultValidator holds the shared validator instance; it caches struct metadata.
var defaultValidator = newValidator()

// newValidator reports fields by their json name when they have one.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct validates a struct using the default validator.
// All failing fields are reported in one error, e.g.
// "validation failed: common_name is required; email is required".
func ValidateStruct(s interface{}) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s %s", ToSnakeCase(fe.Field()), formatValidationError(fe)))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// formatValidationError creates a user-friendly error message for a validation error.
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "ascii":
		return "must contain only ASCII characters"
	default:
		return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
	}
}
