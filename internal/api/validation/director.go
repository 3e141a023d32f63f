package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DINPattern matches an 8-digit Director Identification Number
var DINPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateYesNo accepts the sheet's literal "Yes"/"No" values
func ValidateYesNo(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "Yes" || v == "No"
}

// ValidateDIN validates the Director Identification Number format. Empty
// values pass; required-ness is a separate tag.
func ValidateDIN(fl validator.FieldLevel) bool {
	din := fl.Field().String()
	if din == "" {
		return true
	}
	return DINPattern.MatchString(din)
}

// RegisterDirectorValidators registers all director-related custom validators
func RegisterDirectorValidators(v *validator.Validate) {
	v.RegisterValidation("yesno", ValidateYesNo)
	v.RegisterValidation("din", ValidateDIN)
}
