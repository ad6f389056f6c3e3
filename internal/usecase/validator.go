package usecase

import (
	"github.com/go-playground/validator/v10"

	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/leadform"
	"realty-uae-backend/pkg/validation"
)

// NewValidator returns a validator with the lead tags registered
func NewValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	validation.RegisterEnum(v, "budget_range", domain.BudgetRangeValues())
	validation.RegisterEnum(v, "property_type", domain.PropertyTypeValues())
	validation.RegisterEnum(v, "form_field", leadform.Values())
	validation.RegisterEnum(v, "form_event", leadform.EventTypes())
	return v
}
