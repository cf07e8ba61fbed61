package handlers

import (
	"medication-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator carrying the dashboard's custom rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator().GetValidate()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
