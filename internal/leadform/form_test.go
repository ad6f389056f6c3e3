package leadform

import (
	"testing"

	"realty-uae-backend/internal/domain"
	"realty-uae-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdit(t *testing.T, f Form, field Field, value string) Form {
	t.Helper()
	next, err := Edit(f, field, value)
	require.NoError(t, err)
	return next
}

func TestNewFormDefaults(t *testing.T) {
	f := New()
	assert.Equal(t, domain.BudgetMid, f.Data.Budget)
	assert.Equal(t, domain.PropertyApartment, f.Data.PropertyType)
	assert.Empty(t, f.Data.Email)
	assert.Equal(t, StatusPristine, StatusOf(f, FieldEmail))
	assert.Equal(t, StatusPristine, StatusOf(f, FieldMobile))
	assert.False(t, Errors(f).HasErrors(), "pristine fields show no error even though they are invalid")
	assert.False(t, Ready(f))
}

func TestEditTransitions(t *testing.T) {
	t.Run("Should move from pristine to touched invalid on a bad keystroke", func(t *testing.T) {
		f := mustEdit(t, New(), FieldEmail, "inv")
		assert.Equal(t, StatusTouchedInvalid, StatusOf(f, FieldEmail))
		require.NotNil(t, Errors(f).Email)
		assert.Equal(t, validation.KindInvalidFormat, Errors(f).Email.Kind)
		assert.Nil(t, Errors(f).Mobile, "mobile is still pristine")
	})

	t.Run("Should recompute in place without returning to pristine", func(t *testing.T) {
		f := mustEdit(t, New(), FieldEmail, "inv")
		f = mustEdit(t, f, FieldEmail, "investor@realtyuae.ae")
		assert.Equal(t, StatusTouchedValid, StatusOf(f, FieldEmail))

		f = mustEdit(t, f, FieldEmail, "")
		assert.Equal(t, StatusTouchedInvalid, StatusOf(f, FieldEmail))
		assert.Equal(t, validation.KindRequired, Errors(f).Email.Kind)
	})

	t.Run("Should format mobile keystrokes", func(t *testing.T) {
		f := mustEdit(t, New(), FieldMobile, "971501234567")
		assert.Equal(t, "+971 50 123 4567", f.Data.Mobile)
		assert.Equal(t, StatusTouchedValid, StatusOf(f, FieldMobile))

		f = mustEdit(t, f, FieldMobile, "0501234567")
		assert.Equal(t, "0501234567", f.Data.Mobile)
	})

	t.Run("Should update selections", func(t *testing.T) {
		f := mustEdit(t, New(), FieldBudget, string(domain.BudgetUltra))
		f = mustEdit(t, f, FieldPropertyType, string(domain.PropertyVilla))
		assert.Equal(t, domain.BudgetUltra, f.Data.Budget)
		assert.Equal(t, domain.PropertyVilla, f.Data.PropertyType)
	})

	t.Run("Should reject unknown fields", func(t *testing.T) {
		_, err := Edit(New(), Field("name"), "x")
		assert.Error(t, err)
		_, err = Blur(New(), Field("name"))
		assert.Error(t, err)
	})

	t.Run("Should not mutate the previous form", func(t *testing.T) {
		before := New()
		_ = mustEdit(t, before, FieldEmail, "a")
		assert.Empty(t, before.Touched)
		assert.Empty(t, before.Data.Email)
	})
}

func TestBlurTouchesField(t *testing.T) {
	f, err := Blur(New(), FieldMobile)
	require.NoError(t, err)
	assert.Equal(t, StatusTouchedInvalid, StatusOf(f, FieldMobile))
	assert.Equal(t, validation.KindRequired, Errors(f).Mobile.Kind)
}

func TestSubmit(t *testing.T) {
	t.Run("Should reject and touch both fields when invalid", func(t *testing.T) {
		f := mustEdit(t, New(), FieldEmail, "investor@realtyuae.ae")
		next, d := Submit(f)

		assert.False(t, d.Allowed)
		assert.Nil(t, d.Errors.Email)
		require.NotNil(t, d.Errors.Mobile)
		assert.Equal(t, validation.KindRequired, d.Errors.Mobile.Kind)
		assert.True(t, next.Touched[FieldEmail])
		assert.True(t, next.Touched[FieldMobile])
		assert.Equal(t, StatusTouchedInvalid, StatusOf(next, FieldMobile))
	})

	t.Run("Should allow a first-time submit of valid data with nothing touched", func(t *testing.T) {
		f := New()
		f.Data.Email = "investor@realtyuae.ae"
		f.Data.Mobile = "0501234567"

		_, d := Submit(f)
		assert.True(t, d.Allowed)
	})

	t.Run("Should ignore stale touched state", func(t *testing.T) {
		f := mustEdit(t, New(), FieldEmail, "investor@realtyuae.ae")
		f = mustEdit(t, f, FieldMobile, "0501234567")
		// data changed behind the form's back
		f.Data.Mobile = "123"

		_, d := Submit(f)
		assert.False(t, d.Allowed)
	})
}

func TestSubmitDisabled(t *testing.T) {
	assert.True(t, SubmitDisabled(New(), true))
	assert.False(t, SubmitDisabled(New(), false), "untouched invalid form keeps the button enabled")

	f := mustEdit(t, New(), FieldEmail, "bad")
	assert.True(t, SubmitDisabled(f, false))

	f = mustEdit(t, f, FieldEmail, "investor@realtyuae.ae")
	assert.False(t, SubmitDisabled(f, false))
}
