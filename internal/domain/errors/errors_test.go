package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrappingKeepsIdentity(t *testing.T) {
	cause := stderrors.New("connection reset")

	tests := []struct {
		name string
		err  error
	}{
		{name: "wrap message", err: ErrStationNotFound.WrapMessage("station 4375")},
		{name: "with cause", err: ErrStationNotFound.WithCause(cause)},
		{name: "with details", err: ErrStationNotFound.WithDetails("id 4375")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, ErrStationNotFound)
			assert.NotErrorIs(t, tt.err, ErrDeviceNotFound)

			var appErr AppError
			require.ErrorAs(t, tt.err, &appErr)
			assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
			assert.Equal(t, "STATION_NOT_FOUND", appErr.ErrorCode())
		})
	}
}

func TestBaseError_WithCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := ErrStoreUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Storage is temporarily unavailable: connection reset", err.Error())
	assert.Same(t, ErrStoreUnavailable, ErrStoreUnavailable.WithCause(nil))
}

func TestBaseError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("radius too large")

	assert.Equal(t, "radius too large", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	driverErr := stderrors.New("deadlock detected")
	err := NewDatabaseExecuteError(driverErr, "failed to create review")

	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create review", err.Details())
	assert.Contains(t, err.Error(), "deadlock detected")
}
