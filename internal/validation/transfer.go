// Package validation holds request-level validation shared by the
// HTTP handlers.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"remessa/internal/errors"
)

var validate = validator.New()

// Struct runs the validator tags on a request struct and converts the
// first failure into a DomainError suitable for a 400 response.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &errors.DomainError{Code: "VALIDATION_ERROR", Message: "invalid request"}
	}
	return &errors.DomainError{
		Code:    "VALIDATION_ERROR",
		Message: fieldMessage(verrs[0]),
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "len", "numeric":
		return fmt.Sprintf("%s must be a 10 digit account number", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s must be a date in the form 2006-01-02", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
