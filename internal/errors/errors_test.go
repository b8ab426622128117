package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrUserExists, http.StatusBadRequest},
		{ErrInvalidEmail, http.StatusBadRequest},
		{ErrInvalidPassword, http.StatusBadRequest},
		{ErrEventExists, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrEventNotFound, http.StatusNotFound},
		{ErrNoToken, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusFor(tt.err), tt.err.Error())
	}
}

func TestStatusFor_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("create user: %w", ErrUserExists)
	assert.Equal(t, http.StatusBadRequest, StatusFor(wrapped))
}

func TestResponseFor_RedactsUnknownErrors(t *testing.T) {
	resp := ResponseFor(errors.New("dsn contains credentials"))
	assert.Len(t, resp.Errors, 1)
	assert.Equal(t, "Internal Server Error", resp.Errors[0].Msg)
}

func TestResponseFor_DomainError(t *testing.T) {
	resp := ResponseFor(ErrInvalidPassword)
	assert.Equal(t, []ErrorMessage{{Msg: "Invalid Password"}}, resp.Errors)
}
