package usecase

import (
	"errors"

	"realty-uae-backend/internal/leadform"
	"realty-uae-backend/pkg/apperror"
	"realty-uae-backend/pkg/validation"
)

// FormUsecase drives the lead form state machine for clients that hold the session
type FormUsecase interface {
	// ApplyEvent feeds one interaction into session and describes the result
	ApplyEvent(session leadform.Session, event leadform.Event) (leadform.View, error)
	// FormatMobile applies the as-you-type mobile formatter
	FormatMobile(raw string) string
}

type formUsecase struct{}

func NewFormUsecase() FormUsecase {
	return &formUsecase{}
}

func (uc *formUsecase) ApplyEvent(session leadform.Session, event leadform.Event) (leadform.View, error) {
	if session.Form.Touched == nil {
		session.Form.Touched = leadform.TouchedState{}
	}

	next, out, err := leadform.Apply(session, event)
	if errors.Is(err, leadform.ErrPhase) {
		return leadform.View{}, apperror.Conflict("This action is not available right now").WithDetails(map[string]string{
			"phase": string(session.Phase),
			"event": string(event.Type),
		})
	}
	if err != nil {
		return leadform.View{}, apperror.BadRequest(err.Error())
	}
	return leadform.Describe(next, out), nil
}

func (uc *formUsecase) FormatMobile(raw string) string {
	return validation.FormatMobile(raw)
}
