package validation

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

// TagNoControl rejects strings containing control characters
const TagNoControl = "nocontrol"

// NewStructValidator returns a go-playground validator with the custom tags
// used by domain input types registered
func NewStructValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagNoControl, validateNoControl)
	return v
}

func validateNoControl(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
