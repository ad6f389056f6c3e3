package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("smtp down")
	err := New(http.StatusServiceUnavailable, "Service unavailable", cause)

	assert.Equal(t, http.StatusServiceUnavailable, err.Code)
	assert.Equal(t, "Service unavailable", err.Error())
	assert.ErrorIs(t, err, cause)

	details := map[string]string{"email": "Email is required"}
	unp := Unprocessable("Please correct the highlighted fields", details)
	assert.Equal(t, http.StatusUnprocessableEntity, unp.Code)
	assert.Equal(t, details, unp.Details)

	var target *AppError
	assert.True(t, errors.As(error(BadRequest("bad")), &target))
	assert.Equal(t, http.StatusBadRequest, target.Code)
}
