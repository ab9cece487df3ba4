package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"parish-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks a parsed DTO against its `validate` struct tags and
// folds failures into a single ValidationError the error handler maps to 400.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}

	return apperror.NewValidation(strings.Join(messages, "; "))
}
