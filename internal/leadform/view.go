package leadform

import "realty-uae-backend/internal/domain"

// View is everything the form needs to render after a transition
type View struct {
	Session        Session                `json:"session"`
	Statuses       map[Field]Status       `json:"statuses"`
	Errors         domain.ValidationState `json:"errors"`
	SubmitDisabled bool                   `json:"submit_disabled"`
	Ready          bool                   `json:"ready"`
	Decision       *Decision              `json:"decision,omitempty"`
}

// Describe renders the session
func Describe(s Session, out Outcome) View {
	return View{
		Session: s,
		Statuses: map[Field]Status{
			FieldEmail:  StatusOf(s.Form, FieldEmail),
			FieldMobile: StatusOf(s.Form, FieldMobile),
		},
		Errors:         Errors(s.Form),
		SubmitDisabled: SubmitDisabled(s.Form, s.Phase == PhaseSubmitting),
		Ready:          Ready(s.Form),
		Decision:       out.Decision,
	}
}
