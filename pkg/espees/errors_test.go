package espees

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&APIError{Code: CodeNoInternet, Retryable: true}))
	assert.True(t, IsRetryable(&APIError{Code: "SERVER_503", Retryable: true}))
	assert.False(t, IsRetryable(&APIError{Code: "SERVER_400", Retryable: false}))
	assert.False(t, IsRetryable(errors.New("something else")))

	// Wrapped errors still classify.
	assert.True(t, IsRetryable(errors.Wrap(ErrTimeout, "fetching rates")))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&APIError{Code: CodeAuthError, Err: ErrAuthExpired}))
	assert.True(t, IsAuthError(ErrAuthExpired))
	assert.False(t, IsAuthError(&APIError{Code: "SERVER_401"}))
	assert.False(t, IsAuthError(errors.New("nope")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials",
		UserMessage(&APIError{Code: "SERVER_401", UserMessage: "Invalid credentials"}))

	// Non-client errors still yield something displayable.
	assert.NotEmpty(t, UserMessage(errors.New("raw")))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "BaseURL", Message: "is required"}
	assert.Equal(t, "invalid option 'BaseURL': is required", err.Error())
}
