package exceptions

import (
	"aidentify-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email address",
	"min":       "is too short",
	"max":       "is too long",
	"oneof":     "must be one of: %s",
	"birthdate": "must be a date in YYYY-MM-DD format",
}

// FormatFirstValidationError turns the first validator.v10 error into a
// client-facing message naming the offending field.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	message, ok := validationMessages[firstErr.Tag()]
	if !ok {
		message = "is invalid"
	}
	if firstErr.Tag() == "oneof" {
		message = strings.Replace(message, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
	}
	return fieldName + " " + message
}
