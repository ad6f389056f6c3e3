// Package leadform holds the lead form's per-field touched/validity state machine.
//
// Everything here is plain data and pure functions: a transition takes a Form by value
// and returns the next one, and TouchedState is copied before it is written.
package leadform

import (
	"fmt"

	"realty-uae-backend/internal/domain"
	"realty-uae-backend/pkg/validation"
)

// Field names a form input
type Field string

const (
	FieldEmail        Field = "email"
	FieldMobile       Field = "mobile"
	FieldBudget       Field = "budget"
	FieldPropertyType Field = "property_type"
)

// Valid reports whether f is a known form input
func (f Field) Valid() bool {
	switch f {
	case FieldEmail, FieldMobile, FieldBudget, FieldPropertyType:
		return true
	}
	return false
}

// Values returns the known field names for tag registration
func Values() []string {
	return []string{string(FieldEmail), string(FieldMobile), string(FieldBudget), string(FieldPropertyType)}
}

// TouchedState records the fields the user has interacted with
type TouchedState map[Field]bool

func (t TouchedState) with(field Field) TouchedState {
	out := make(TouchedState, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[field] = true
	return out
}

// Status is the visible state of a contact field
type Status string

const (
	// StatusPristine: untouched, no error shown even if invalid
	StatusPristine Status = "pristine"
	// StatusTouchedInvalid: visited or submit attempted, error shown
	StatusTouchedInvalid Status = "touched_invalid"
	// StatusTouchedValid: visited and valid, success indicator shown
	StatusTouchedValid Status = "touched_valid"
)

// Form is the lead form's data and touched flags
type Form struct {
	Data    domain.LeadData `json:"data"`
	Touched TouchedState    `json:"touched"`
}

// New returns an empty form with the default selections
func New() Form {
	return Form{
		Data: domain.LeadData{
			Budget:       domain.DefaultBudget,
			PropertyType: domain.DefaultPropertyType,
		},
		Touched: TouchedState{},
	}
}

// Edit applies a keystroke or selection. The mobile value goes through the
// as-you-type formatter first. The field becomes touched.
func Edit(f Form, field Field, value string) (Form, error) {
	switch field {
	case FieldEmail:
		f.Data.Email = value
	case FieldMobile:
		f.Data.Mobile = validation.FormatMobile(value)
	case FieldBudget:
		f.Data.Budget = domain.BudgetRange(value)
	case FieldPropertyType:
		f.Data.PropertyType = domain.PropertyType(value)
	default:
		return f, fmt.Errorf("leadform: unknown field %q", field)
	}
	f.Touched = f.Touched.with(field)
	return f, nil
}

// Blur marks a field as visited
func Blur(f Form, field Field) (Form, error) {
	if !field.Valid() {
		return f, fmt.Errorf("leadform: unknown field %q", field)
	}
	f.Touched = f.Touched.with(field)
	return f, nil
}

// Errors returns the errors to display: only touched contact fields report one
func Errors(f Form) domain.ValidationState {
	var state domain.ValidationState
	if f.Touched[FieldEmail] {
		state.Email = validation.ValidateEmail(f.Data.Email)
	}
	if f.Touched[FieldMobile] {
		state.Mobile = validation.ValidateMobile(f.Data.Mobile)
	}
	return state
}

// StatusOf returns the visible state of the email or mobile field
func StatusOf(f Form, field Field) Status {
	if !f.Touched[field] {
		return StatusPristine
	}

	var err *validation.FieldError
	switch field {
	case FieldEmail:
		err = validation.ValidateEmail(f.Data.Email)
	case FieldMobile:
		err = validation.ValidateMobile(f.Data.Mobile)
	}
	if err != nil {
		return StatusTouchedInvalid
	}
	return StatusTouchedValid
}

// Ready reports fresh validity of both contact fields, ignoring touched flags
func Ready(f Form) bool {
	return !domain.ValidateLead(f.Data).HasErrors()
}

// SubmitDisabled is the submit button rule: disabled while a submission runs, or
// while a touched contact field shows an error. An untouched invalid form stays
// enabled; Submit rejects it.
func SubmitDisabled(f Form, submitting bool) bool {
	if submitting {
		return true
	}
	return Errors(f).HasErrors() && (f.Touched[FieldEmail] || f.Touched[FieldMobile])
}

// Decision is the outcome of a submission attempt
type Decision struct {
	Allowed bool                   `json:"allowed"`
	Errors  domain.ValidationState `json:"errors"`
}

// Submit re-validates from scratch, independent of any cached error state. When
// either field is invalid both contact fields become touched so their errors show,
// and the submission is rejected.
func Submit(f Form) (Form, Decision) {
	errs := domain.ValidateLead(f.Data)
	if errs.HasErrors() {
		f.Touched = f.Touched.with(FieldEmail).with(FieldMobile)
		return f, Decision{Allowed: false, Errors: errs}
	}
	return f, Decision{Allowed: true}
}
