package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers the contact field validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("lead_email", LeadEmail)
	_ = v.RegisterValidation("uae_mobile", UAEMobile)
}

// RegisterEnum registers a tag that accepts only the listed values
func RegisterEnum(v *validator.Validate, tag string, allowed []string) {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
}

// LeadEmail validates an email with the same rule the form applies.
// Empty values pass; combine with required when needed.
func LeadEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ValidateEmail(val) == nil
}

// UAEMobile validates a UAE mobile or landline number after normalization
func UAEMobile(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ValidateMobile(val) == nil
}
