package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/movie-discovery/internal/domain"
)

const (
	ErrRequired        = "is required"
	ErrMinLength       = "must be at least %s"
	ErrMaxLength       = "must be at most %s"
	ErrOneOf           = "must be one of: %s"
	ErrInvalidCategory = "must be one of: now_playing, top_rated, upcoming"
	ErrInvalidURL      = "must be a valid URL"
	ErrInvalid         = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("category", validateCategory)

	return validator
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := domain.ParseCategory(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min", "gte":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max", "lte":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "category":
		return ErrInvalidCategory
	case "url":
		return ErrInvalidURL
	default:
		return ErrInvalid
	}
}
