package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"helpdesk/internal/shared/errors"
)

// BindingError converts a gin binding failure into a validation AppError with
// a per-field detail string instead of validator's raw struct paths.
func BindingError(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if ok := asValidationErrors(err, &verrs); ok {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fieldMessage(fe))
		}
		return errors.NewValidationError("Validation failed", strings.Join(parts, "; "))
	}
	return errors.NewValidationError("Invalid request body", err.Error())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*target = verrs
		return true
	}
	return false
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " is invalid"
	}
}
