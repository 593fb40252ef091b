package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"audio-summarizer/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds form fields into req and validates struct tags and
// domain rules.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return validationError(err, "request", "invalid form data")
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateURI binds and validates path parameters.
func ValidateURI(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindUri(req); err != nil {
		return validationError(err, "path", "invalid path parameters")
	}
	return nil
}

func validationError(err error, fallbackField, fallbackMessage string) *errors.APIError {
	validationErrors := make(map[string]string)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())

			switch fieldError.Tag() {
			case "required":
				validationErrors[field] = "is required"
			case "max":
				validationErrors[field] = "is too long"
			case "uuid":
				validationErrors[field] = "must be a valid id"
			default:
				validationErrors[field] = "is invalid"
			}
		}
	} else {
		validationErrors[fallbackField] = fallbackMessage
	}

	return errors.NewValidationError("Validation failed", validationErrors)
}
