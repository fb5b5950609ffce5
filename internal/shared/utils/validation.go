package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sellora-inc/sellora/internal/shared/errors"
)

var validate *validator.Validate

// domainRegex matches hostnames like "acme.example.com" or "acme-store.io".
var domainRegex = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("tenant_domain", func(fl validator.FieldLevel) bool {
		return domainRegex.MatchString(strings.ToLower(fl.Field().String()))
	})
}

// ValidateStruct validates a struct and returns a field-level validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fieldErrorMessage(fe)
	}

	return errors.NewFieldValidationError("Validation failed", fields)
}

// IsValidDomain reports whether s is a well-formed tenant domain.
func IsValidDomain(s string) bool {
	return domainRegex.MatchString(strings.ToLower(s))
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "tenant_domain":
		return "must be a valid domain name"
	default:
		return fmt.Sprintf("failed validation on %s", fe.Tag())
	}
}
