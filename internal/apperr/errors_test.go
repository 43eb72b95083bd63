package apperr

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"constraint", NewConstraintViolation("fk", errors.New("1452")), http.StatusConflict},
		{"connection", NewConnectionError("down", driver.ErrBadConn), http.StatusServiceUnavailable},
		{"not found", NewNotFoundError("user not found"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("create user: %w", NewValidationError("bad")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestCauseStaysReachable(t *testing.T) {
	err := NewConnectionError("store unreachable", driver.ErrBadConn)

	assert.True(t, IsConnection(err))
	assert.False(t, IsConstraintViolation(err))
	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.Contains(t, err.Error(), "connection_error")
}

func TestValidationDetails(t *testing.T) {
	err := NewValidationError("Validation failed", "height must be greater than 0")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation_error: Validation failed (height must be greater than 0)", err.Error())
}
