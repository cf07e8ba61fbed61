package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("filter_value", validateFilterValue)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateFilterValue accepts the text of a treatment place or group provider
// as it appears in the dataset: any non-empty valid UTF-8. Membership in the
// dataset options is checked by the filter service.
func validateFilterValue(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value != "" && utf8.ValidString(value)
}
