package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadDTO struct {
	Email  string `validate:"required,lead_email"`
	Mobile string `validate:"required,uae_mobile"`
	Budget string `validate:"required,budget_range"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	RegisterEnum(v, "budget_range", []string{"AED 1M - 3M", "AED 10M+"})
	return v
}

func TestCustomTags(t *testing.T) {
	v := newValidator()

	t.Run("Should accept a valid lead", func(t *testing.T) {
		err := v.Struct(leadDTO{Email: "investor@realtyuae.ae", Mobile: "+971 50 123 4567", Budget: "AED 10M+"})
		assert.NoError(t, err)
	})

	t.Run("Should report each invalid field", func(t *testing.T) {
		err := v.Struct(leadDTO{Email: "not-an-email", Mobile: "1234567", Budget: "AED 1"})
		require.Error(t, err)

		msgs := FormatValidationErrors(err)
		assert.ElementsMatch(t, []string{
			"Email Address: " + MsgEmailInvalid,
			"Mobile Number: " + MsgMobileInvalid,
			`Investment Budget: "AED 1" is not an available option`,
		}, msgs)
	})

	t.Run("Should report required fields", func(t *testing.T) {
		err := v.Struct(leadDTO{})
		require.Error(t, err)
		assert.Contains(t, FormatValidationErrors(err), "Email Address: is required")
	})
}

func TestFormatValidationErrorsGenericError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Selected Area", getFieldLabel("SelectedArea"))
}
