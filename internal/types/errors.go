package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Status sentinels for failures that never produced an HTTP status.
const (
	// StatusNoConnection marks failures where the request left the client but
	// no response arrived (offline, connection dropped).
	StatusNoConnection = -1

	// StatusRequestSetup marks failures where the request was never sent
	// (bad URL, body marshalling, request construction).
	StatusRequestSetup = -2
)

// Error codes for transport-level failures. Server failures use the dynamic
// form "SERVER_<status>" built by ServerErrorCode.
const (
	CodeNoInternet        = "NO_INTERNET"
	CodeRequestTimeout    = "REQUEST_TIMEOUT"
	CodeNoResponse        = "NO_RESPONSE"
	CodeRequestSetupError = "REQUEST_SETUP_ERROR"
	CodeAuthError         = "AUTH_ERROR"
	CodeValidationError   = "VALIDATION_ERROR"
)

// Common errors
var (
	// ErrOffline is returned when the device has no connectivity.
	ErrOffline = errors.New("no internet connection")

	// ErrTimeout is returned on request timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrNoResponse is returned when the request was sent but no response arrived.
	ErrNoResponse = errors.New("no response received")

	// ErrRequestSetup is returned when the request could not be constructed.
	ErrRequestSetup = errors.New("request setup failed")

	// ErrAuthExpired is returned when the session is no longer valid.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrServerError is returned for 5xx responses.
	ErrServerError = errors.New("server error")

	// ErrValidation is returned when a response does not match its expected shape.
	ErrValidation = errors.New("response validation failed")
)

// APIError is the single normalized error shape every failure collapses into
// before reaching callers. Immutable after construction; retries that also
// fail produce a new value.
type APIError struct {
	// Status is the HTTP status code, or a negative sentinel for
	// transport-level failures.
	Status int `json:"status"`

	// Code is the symbolic classification, e.g. "SERVER_500" or "NO_INTERNET".
	Code string `json:"errorCode"`

	// Message is the diagnostic message.
	Message string `json:"message"`

	// Data carries the raw server payload when one was received.
	Data json.RawMessage `json:"data,omitempty"`

	// Retryable reports whether the resilience policy may re-attempt.
	Retryable bool `json:"retryable"`

	// UserMessage is a display string suitable for end users.
	UserMessage string `json:"userFriendlyMessage"`

	// Timestamp records when the failure was classified.
	Timestamp time.Time `json:"timestamp"`

	// Err is the underlying cause, if any.
	Err error `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches target
func (e *APIError) Is(target error) bool {
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}

	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

// ServerErrorCode builds the symbolic code for a server response status.
func ServerErrorCode(status int) string {
	return fmt.Sprintf("SERVER_%d", status)
}

// RetryableStatus reports whether a response status is eligible for retry.
func RetryableStatus(status int) bool {
	switch status {
	case 408, 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// friendlyMessages maps error codes to display strings. Server-provided
// messages take precedence over these.
var friendlyMessages = map[string]string{
	CodeNoInternet:        "You appear to be offline. Check your connection and try again.",
	CodeRequestTimeout:    "The request took too long. Please try again.",
	CodeNoResponse:        "We couldn't reach the server. Please try again.",
	CodeRequestSetupError: "The request could not be prepared. Please try again.",
	CodeAuthError:         "Your session has expired. Please sign in again.",
	CodeValidationError:   "We received an unexpected response. Please try again.",
}

// FriendlyMessage resolves a user-facing message for a code and status.
// serverMsg, when non-empty, wins outright.
func FriendlyMessage(code string, status int, serverMsg string) string {
	if serverMsg != "" {
		return serverMsg
	}
	if msg, ok := friendlyMessages[code]; ok {
		return msg
	}
	switch {
	case status >= 500:
		return "Something went wrong on our end. Please try again shortly."
	case status >= 400:
		return "We couldn't complete your request."
	default:
		return "Something went wrong. Please try again."
	}
}

// NewServerError normalizes a response received with an error status.
func NewServerError(status int, serverMsg string, payload json.RawMessage) *APIError {
	code := ServerErrorCode(status)
	msg := serverMsg
	if msg == "" {
		msg = fmt.Sprintf("HTTP Error: %d", status)
	}

	var cause error
	if status >= 500 {
		cause = ErrServerError
	}

	return &APIError{
		Status:      status,
		Code:        code,
		Message:     msg,
		Data:        payload,
		Retryable:   RetryableStatus(status),
		UserMessage: FriendlyMessage(code, status, serverMsg),
		Timestamp:   time.Now(),
		Err:         cause,
	}
}

// NewTimeoutError normalizes a connection-abort or timeout with no response.
func NewTimeoutError(cause error) *APIError {
	return &APIError{
		Status:      408,
		Code:        CodeRequestTimeout,
		Message:     "request timed out",
		Retryable:   true,
		UserMessage: FriendlyMessage(CodeRequestTimeout, 408, ""),
		Timestamp:   time.Now(),
		Err:         wrapCause(cause, ErrTimeout),
	}
}

// NewOfflineError normalizes a confirmed no-connectivity condition.
func NewOfflineError() *APIError {
	return &APIError{
		Status:      StatusNoConnection,
		Code:        CodeNoInternet,
		Message:     "no internet connection",
		Retryable:   true,
		UserMessage: FriendlyMessage(CodeNoInternet, StatusNoConnection, ""),
		Timestamp:   time.Now(),
		Err:         ErrOffline,
	}
}

// NewNoResponseError normalizes a sent request that produced no response for
// reasons other than timeout or a known-offline device.
func NewNoResponseError(cause error) *APIError {
	return &APIError{
		Status:      StatusNoConnection,
		Code:        CodeNoResponse,
		Message:     "no response received",
		Retryable:   true,
		UserMessage: FriendlyMessage(CodeNoResponse, StatusNoConnection, ""),
		Timestamp:   time.Now(),
		Err:         wrapCause(cause, ErrNoResponse),
	}
}

// NewSetupError normalizes a request that was never sent.
func NewSetupError(cause error) *APIError {
	msg := "request setup failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &APIError{
		Status:      StatusRequestSetup,
		Code:        CodeRequestSetupError,
		Message:     msg,
		Retryable:   false,
		UserMessage: FriendlyMessage(CodeRequestSetupError, StatusRequestSetup, ""),
		Timestamp:   time.Now(),
		Err:         wrapCause(cause, ErrRequestSetup),
	}
}

// NewAuthError normalizes an unrecoverable 401.
func NewAuthError(serverMsg string, payload json.RawMessage) *APIError {
	return &APIError{
		Status:      401,
		Code:        CodeAuthError,
		Message:     "authentication expired",
		Data:        payload,
		Retryable:   false,
		UserMessage: FriendlyMessage(CodeAuthError, 401, serverMsg),
		Timestamp:   time.Now(),
		Err:         ErrAuthExpired,
	}
}

// NewValidationError normalizes a response-shape mismatch.
func NewValidationError(cause error) *APIError {
	return &APIError{
		Status:      StatusRequestSetup,
		Code:        CodeValidationError,
		Message:     "response validation failed",
		Retryable:   false,
		UserMessage: FriendlyMessage(CodeValidationError, 0, ""),
		Timestamp:   time.Now(),
		Err:         wrapCause(cause, ErrValidation),
	}
}

// wrapCause attaches sentinel to cause so both errors.Is checks hold.
func wrapCause(cause, sentinel error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
