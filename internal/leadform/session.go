package leadform

import (
	"errors"
	"fmt"
)

// Phase is where the form session is in the submission flow
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseCompleted  Phase = "completed"
)

// EventType is a user interaction fed into the session
type EventType string

const (
	EventEdit     EventType = "edit"
	EventBlur     EventType = "blur"
	EventSubmit   EventType = "submit"
	EventComplete EventType = "complete"
	EventReset    EventType = "reset"
)

// EventTypes returns the known event names for tag registration
func EventTypes() []string {
	return []string{string(EventEdit), string(EventBlur), string(EventSubmit), string(EventComplete), string(EventReset)}
}

var ErrPhase = errors.New("leadform: event not allowed in current phase")

// Event is one interaction. Value is only read for edits.
type Event struct {
	Type  EventType `json:"type"`
	Field Field     `json:"field,omitempty"`
	Value string    `json:"value,omitempty"`
}

// Session is a form together with its submission phase
type Session struct {
	Form  Form  `json:"form"`
	Phase Phase `json:"phase"`
}

// NewSession starts an idle session on an empty form
func NewSession() Session {
	return Session{Form: New(), Phase: PhaseIdle}
}

// Outcome is returned alongside the next session. Decision is set for submit events.
type Outcome struct {
	Decision *Decision `json:"decision,omitempty"`
}

// Apply feeds one event into the session and returns the next session.
// Edits and blurs are ignored outside the idle phase, as the form is not shown then.
func Apply(s Session, e Event) (Session, Outcome, error) {
	if s.Phase == "" {
		s.Phase = PhaseIdle
	}

	switch e.Type {
	case EventEdit, EventBlur:
		if s.Phase != PhaseIdle {
			return s, Outcome{}, ErrPhase
		}
		var err error
		if e.Type == EventEdit {
			s.Form, err = Edit(s.Form, e.Field, e.Value)
		} else {
			s.Form, err = Blur(s.Form, e.Field)
		}
		return s, Outcome{}, err

	case EventSubmit:
		if s.Phase != PhaseIdle {
			return s, Outcome{}, ErrPhase
		}
		var d Decision
		s.Form, d = Submit(s.Form)
		if d.Allowed {
			s.Phase = PhaseSubmitting
		}
		return s, Outcome{Decision: &d}, nil

	case EventComplete:
		if s.Phase != PhaseSubmitting {
			return s, Outcome{}, ErrPhase
		}
		s.Phase = PhaseCompleted
		return s, Outcome{}, nil

	case EventReset:
		// "New analysis request": the form is shown again from scratch
		if s.Phase != PhaseCompleted {
			return s, Outcome{}, ErrPhase
		}
		return NewSession(), Outcome{}, nil
	}

	return s, Outcome{}, fmt.Errorf("leadform: unknown event %q", e.Type)
}
