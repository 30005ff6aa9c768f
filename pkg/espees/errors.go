package espees

import (
	"errors"
	"fmt"

	"github.com/espeeswap/espeeswap-go/internal/types"
)

// APIError is the normalized error every failed operation returns. Callers
// inspect Code/Status for machine handling and UserMessage for display.
type APIError = types.APIError

// Sentinel errors for errors.Is checks.
var (
	// ErrOffline is returned when the device has no connectivity.
	ErrOffline = types.ErrOffline

	// ErrTimeout is returned on request timeout.
	ErrTimeout = types.ErrTimeout

	// ErrNoResponse is returned when a sent request got no response.
	ErrNoResponse = types.ErrNoResponse

	// ErrRequestSetup is returned when a request could not be constructed.
	ErrRequestSetup = types.ErrRequestSetup

	// ErrAuthExpired is returned when the session is no longer valid.
	ErrAuthExpired = types.ErrAuthExpired

	// ErrServerError is returned for 5xx responses.
	ErrServerError = types.ErrServerError

	// ErrValidation is returned when a response does not match its shape.
	ErrValidation = types.ErrValidation
)

// Error codes carried on APIError. Server failures use "SERVER_<status>".
const (
	CodeNoInternet        = types.CodeNoInternet
	CodeRequestTimeout    = types.CodeRequestTimeout
	CodeNoResponse        = types.CodeNoResponse
	CodeRequestSetupError = types.CodeRequestSetupError
	CodeAuthError         = types.CodeAuthError
	CodeValidationError   = types.CodeValidationError
)

// ValidationError reports a bad ClientOptions field at construction.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid option '%s': %s", e.Field, e.Message)
}

// IsRetryable checks if error is eligible for automatic re-attempt
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return errors.Is(err, ErrOffline) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrNoResponse) ||
		errors.Is(err, ErrServerError)
}

// IsAuthError checks if error means the session expired
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthExpired)
}

// UserMessage extracts the display string from any error the client returns.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage
	}
	return types.FriendlyMessage("", 0, "")
}
