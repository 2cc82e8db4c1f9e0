package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ArcLab_Go/internal/validation"
)

// Validator wraps the shared struct validator
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the package validator. Safe to call more than once.
func InitValidator() {
	validateOnce.Do(func() {
		validate = &Validator{validate: validation.NewStructValidator()}
	})
}

// GetValidator returns the package validator, building it on first use
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using its tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps validation failures to field -> message using
// the JSON-ish lowercase field name, never the Go struct path.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "dive":
			errs[field] = "Invalid entry"
		case validation.TagNoControl:
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
