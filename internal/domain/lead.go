package domain

import (
	"context"

	"realty-uae-backend/pkg/validation"
)

// BudgetRange is the investment budget bracket picked on the form
type BudgetRange string

const (
	BudgetBasic BudgetRange = "AED 500k - 1M"
	BudgetMid   BudgetRange = "AED 1M - 3M"
	BudgetHigh  BudgetRange = "AED 3M - 10M"
	BudgetUltra BudgetRange = "AED 10M+"
)

// BudgetRanges lists the brackets in display order
var BudgetRanges = []BudgetRange{BudgetBasic, BudgetMid, BudgetHigh, BudgetUltra}

// PropertyType is the asset class the investor is interested in
type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyTownhouse PropertyType = "Townhouse"
	PropertyLand      PropertyType = "Investment Land"
	PropertyCommunity PropertyType = "Gated Community"
)

// PropertyTypes lists the asset classes in display order
var PropertyTypes = []PropertyType{PropertyApartment, PropertyVilla, PropertyTownhouse, PropertyLand, PropertyCommunity}

// Form defaults
const (
	DefaultBudget       = BudgetMid
	DefaultPropertyType = PropertyApartment
)

// BudgetRangeValues returns the brackets as plain strings for tag registration
func BudgetRangeValues() []string {
	out := make([]string, len(BudgetRanges))
	for i, b := range BudgetRanges {
		out[i] = string(b)
	}
	return out
}

// PropertyTypeValues returns the asset classes as plain strings for tag registration
func PropertyTypeValues() []string {
	out := make([]string, len(PropertyTypes))
	for i, p := range PropertyTypes {
		out[i] = string(p)
	}
	return out
}

// LeadData is a prospective investor's contact details and preferences
type LeadData struct {
	Email        string       `json:"email"`
	Mobile       string       `json:"mobile"`
	Budget       BudgetRange  `json:"budget" validate:"required,budget_range"`
	PropertyType PropertyType `json:"property_type" validate:"required,property_type"`
}

// ValidationState holds the current error, if any, for each contact field
type ValidationState struct {
	Email  *validation.FieldError `json:"email,omitempty"`
	Mobile *validation.FieldError `json:"mobile,omitempty"`
}

// HasErrors reports whether any field carries an error
func (v ValidationState) HasErrors() bool {
	return v.Email != nil || v.Mobile != nil
}

// ValidateLead evaluates both contact fields from scratch
func ValidateLead(lead LeadData) ValidationState {
	return ValidationState{
		Email:  validation.ValidateEmail(lead.Email),
		Mobile: validation.ValidateMobile(lead.Mobile),
	}
}

// LeadOptions is what the form needs to render its selectors
type LeadOptions struct {
	BudgetRanges        []BudgetRange  `json:"budget_ranges"`
	PropertyTypes       []PropertyType `json:"property_types"`
	DefaultBudget       BudgetRange    `json:"default_budget"`
	DefaultPropertyType PropertyType   `json:"default_property_type"`
}

// StrategyResult is returned to the investor after a successful submission
type StrategyResult struct {
	Strategy       string                `json:"strategy"`
	Fallback       bool                  `json:"fallback"`
	Mobile         validation.MobileInfo `json:"mobile"`
	AdvisorContact string                `json:"advisor_contact"`
}

// LeadUsecase defines the interface for lead capture operations
type LeadUsecase interface {
	// Options returns the selectable budgets and property types
	Options() LeadOptions
	// SubmitLead re-validates the lead and, when valid, returns an investment strategy
	SubmitLead(ctx context.Context, lead LeadData) (*StrategyResult, error)
}

// LeadNotifier tells the advisors about a captured lead
type LeadNotifier interface {
	NotifyLead(ctx context.Context, lead LeadData, mobile validation.MobileInfo, strategy string) error
}
