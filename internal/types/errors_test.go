package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizationTotality(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantCode   string
		retryable  bool
	}{
		{"server error", NewServerError(500, "", nil), 500, "SERVER_500", true},
		{"timeout", NewTimeoutError(cause), 408, CodeRequestTimeout, true},
		{"offline", NewOfflineError(), StatusNoConnection, CodeNoInternet, true},
		{"no response", NewNoResponseError(cause), StatusNoConnection, CodeNoResponse, true},
		{"setup", NewSetupError(cause), StatusRequestSetup, CodeRequestSetupError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantStatus, tc.err.Status)
			assert.Equal(t, tc.wantCode, tc.err.Code)
			assert.Equal(t, tc.retryable, tc.err.Retryable)
			assert.NotEmpty(t, tc.err.Message)
			assert.NotEmpty(t, tc.err.UserMessage)
			assert.False(t, tc.err.Timestamp.IsZero())
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	for _, status := range []int{408, 429, 500, 502, 503, 504} {
		assert.True(t, RetryableStatus(status), "status %d", status)
	}
	for _, status := range []int{200, 301, 400, 401, 403, 404, 422, 501} {
		assert.False(t, RetryableStatus(status), "status %d", status)
	}
}

func TestNewServerError(t *testing.T) {
	payload := json.RawMessage(`{"message":"Invalid credentials"}`)
	err := NewServerError(401, "Invalid credentials", payload)

	assert.Equal(t, 401, err.Status)
	assert.Equal(t, "SERVER_401", err.Code)
	assert.False(t, err.Retryable)
	assert.Equal(t, "Invalid credentials", err.Message)
	// Server-provided message wins as the friendly message.
	assert.Equal(t, "Invalid credentials", err.UserMessage)
	assert.Equal(t, payload, err.Data)
	assert.Nil(t, err.Err)
}

func TestNewServerError_DefaultsMessage(t *testing.T) {
	err := NewServerError(503, "", nil)

	assert.Equal(t, "HTTP Error: 503", err.Message)
	assert.True(t, err.Retryable)
	assert.ErrorIs(t, err, ErrServerError)
}

func TestFriendlyMessageBands(t *testing.T) {
	assert.Contains(t, FriendlyMessage("SERVER_500", 500, ""), "on our end")
	assert.Contains(t, FriendlyMessage("SERVER_404", 404, ""), "couldn't complete")
	assert.Contains(t, FriendlyMessage("", 0, ""), "try again")
	assert.Equal(t, "from the server", FriendlyMessage("SERVER_500", 500, "from the server"))
}

func TestAPIErrorIs(t *testing.T) {
	assert.ErrorIs(t, NewOfflineError(), ErrOffline)
	assert.ErrorIs(t, NewTimeoutError(errors.New("deadline")), ErrTimeout)
	assert.ErrorIs(t, NewNoResponseError(nil), ErrNoResponse)
	assert.ErrorIs(t, NewSetupError(nil), ErrRequestSetup)
	assert.ErrorIs(t, NewAuthError("", nil), ErrAuthExpired)

	// Matching by code against another APIError.
	assert.ErrorIs(t, NewOfflineError(), &APIError{Code: CodeNoInternet})
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewNoResponseError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), CodeNoResponse)
}
